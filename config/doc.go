// Package config loads and validates abstat experiment plan files.
//
// A plan file is YAML (or JSON, by .json extension) and lists observed
// experiments to evaluate and sample-size questions to answer:
//
//	name: checkout
//	settings:
//	  power: 0.9
//	experiments:
//	  - name: hero-banner
//	    control: {conversions: 358, total: 4216}
//	    treatment: {conversions: 425, total: 4216}
//	plans:
//	  - name: pricing-page
//	    baselineRate: 0.10
//	    mde: 0.05
//
// Basic Usage:
//
//	plan, err := config.LoadPlan("plan.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if errs := config.ValidatePlan(plan); len(errs) > 0 {
//	    for _, err := range errs {
//	        fmt.Println(err)
//	    }
//	}
//
// Experiments may read their counts from a JSON export instead of inline
// values through a source block with JSONPath expressions:
//
//	experiments:
//	  - name: hero-banner
//	    source:
//	      file: export.json
//	      control: {conversions: "$.variants[0].conversions", total: "$.variants[0].users"}
//	      treatment: {conversions: "$.variants[1].conversions", total: "$.variants[1].users"}
//
// Documents are checked against an embedded JSON Schema before decoding.
package config
