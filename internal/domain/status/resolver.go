package status

import "strings"

// Resolution is the outcome of resolving a desired status name against the
// directory. Resolved=false is the degraded free-text mode, not a failure:
// callers fall back to sending the human-readable label instead of an id.
type Resolution struct {
	StatusID uint
	Name     string
	Resolved bool
}

// Resolve finds the directory entry for desiredName. Matching is
// case-insensitive and substring-based ("approved" matches "Material
// Approved"). Among matches, an entry scoped to companyID wins, then a
// global entry (nil company scope), then the first match in list order.
//
// This is the single place the fuzzy name heuristic lives; everything else
// works with canonical workflow states.
func Resolve(statuses []*Status, desiredName string, companyID *uint) Resolution {
	desired := strings.ToLower(desiredName)
	if desired == "" {
		return Resolution{Name: desiredName}
	}

	var matches []*Status
	for _, s := range statuses {
		if strings.Contains(strings.ToLower(s.Name()), desired) {
			matches = append(matches, s)
		}
	}

	if len(matches) == 0 {
		return Resolution{Name: desiredName}
	}

	if companyID != nil {
		for _, s := range matches {
			if s.CompanyID() != nil && *s.CompanyID() == *companyID {
				return Resolution{StatusID: s.ID(), Name: s.Name(), Resolved: true}
			}
		}
	}

	for _, s := range matches {
		if s.CompanyID() == nil {
			return Resolution{StatusID: s.ID(), Name: s.Name(), Resolved: true}
		}
	}

	first := matches[0]
	return Resolution{StatusID: first.ID(), Name: first.Name(), Resolved: true}
}
