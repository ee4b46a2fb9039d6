package config

import "sort"

// Presets holds named parameter sets per family.
var Presets = map[string]map[string]JobConfig{
	"membrane": {
		"fundamental": {Family: "membrane", N: 1, M: 1},
		"classic":     {Family: "membrane", N: 2, M: 3},
		"square":      {Family: "membrane", N: 3, M: 3, SizeX: Float(1), SizeY: Float(1)},
		"drum":        {Family: "membrane", N: 4, M: 1, SizeX: Float(2), SizeY: Float(1)},
	},
	"legendre": {
		"classic": {Family: "legendre", Orders: []int{0, 1, 2, 3, 4}},
		"low":     {Family: "legendre", Orders: []int{0, 1, 2}},
		"high":    {Family: "legendre", Orders: []int{5, 6, 7, 8}},
	},
	"multipole": {
		"monopole":   {Family: "multipole", L: 0},
		"dipole":     {Family: "multipole", L: 1},
		"quadrupole": {Family: "multipole", L: 2},
		"octupole":   {Family: "multipole", L: 3},
	},
	"harmonic": {
		"classic":  {Family: "harmonic", L: 3, M: 2},
		"zonal":    {Family: "harmonic", L: 2, M: 0},
		"sectoral": {Family: "harmonic", L: 3, M: 3},
		"tesseral": {Family: "harmonic", L: 4, M: 2},
	},
	"bessel": {
		"classic": {Family: "bessel", Orders: []int{0, 1, 2, 3}},
		"high":    {Family: "bessel", Orders: []int{4, 5, 6, 7}},
	},
}

// GetPreset returns a copy of the named preset with Name set, or nil.
func GetPreset(family, preset string) *JobConfig {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	jc, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	jc.Name = family + "_" + preset
	jc.Orders = append([]int(nil), jc.Orders...)
	return &jc
}

// ListPresets returns the preset names of a family, sorted.
func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
