// Package engine holds the outfit recommendation core: measurement
// estimation, body type classification, measurement validation, event
// context resolution and the outfit assembly state machine. The package is
// pure: no I/O, all randomness through injected sources.
package engine

import "attireapi/models"

// EstimateAndValidate is the main measurement entry point: it completes the
// partial profile and reports guide violations alongside it. Violations are
// advisory; rejecting on them is the caller's policy.
func EstimateAndValidate(partial models.PartialProfile) (models.Profile, []string, error) {
	profile, err := Estimate(partial)
	if err != nil {
		return models.Profile{}, nil, err
	}
	return profile, ValidateProfile(profile), nil
}
