package schema

import (
	"fmt"
	"strings"
)

type Domain string

const (
	Retail    Domain = "retail"
	HR        Domain = "hr"
	Sales     Domain = "sales"
	Education Domain = "education"
	Finance   Domain = "finance"
	Inventory Domain = "inventory"
)

var AllDomains = []Domain{Retail, HR, Sales, Education, Finance, Inventory}

// Profiles are named domain sets. "core" matches the smaller fixture variant.
var Profiles = map[string][]Domain{
	"core": {Retail, HR, Sales},
	"full": AllDomains,
}

// domainRequires lists domains whose tables reference another domain's tables.
var domainRequires = map[Domain][]Domain{
	Sales:     {Retail},
	Inventory: {Retail},
}

// ParseDomains accepts domain names and profile names and returns the
// enabled domains in canonical order.
func ParseDomains(names []string) ([]Domain, error) {
	if len(names) == 0 {
		return append([]Domain(nil), AllDomains...), nil
	}

	enabled := make(map[Domain]bool)
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if profile, ok := Profiles[name]; ok {
			for _, d := range profile {
				enabled[d] = true
			}
			continue
		}
		if !isKnownDomain(Domain(name)) {
			return nil, fmt.Errorf("unknown domain %q (known: %s)", raw, joinDomains(AllDomains))
		}
		enabled[Domain(name)] = true
	}

	var domains []Domain
	for _, d := range AllDomains {
		if enabled[d] {
			domains = append(domains, d)
		}
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("no domains selected")
	}
	if err := ValidateDomains(domains); err != nil {
		return nil, err
	}
	return domains, nil
}

func ValidateDomains(domains []Domain) error {
	set := domainSet(domains)
	for _, d := range domains {
		for _, req := range domainRequires[d] {
			if !set[req] {
				return fmt.Errorf("domain %s requires domain %s", d, req)
			}
		}
	}
	return nil
}

func HasDomain(domains []Domain, d Domain) bool {
	return domainSet(domains)[d]
}

func isKnownDomain(d Domain) bool {
	for _, known := range AllDomains {
		if known == d {
			return true
		}
	}
	return false
}

func domainSet(domains []Domain) map[Domain]bool {
	set := make(map[Domain]bool, len(domains))
	for _, d := range domains {
		set[d] = true
	}
	return set
}

func joinDomains(domains []Domain) string {
	parts := make([]string, len(domains))
	for i, d := range domains {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
