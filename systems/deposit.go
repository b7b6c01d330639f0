package systems

import "github.com/DipFlip/farmpire-survivors/components"

// StationNeeds returns how many more units of t the station wants.
func StationNeeds(s *components.Station, t components.ItemType) int {
	if s.Complete {
		return 0
	}
	for i := range s.Requirements {
		if s.Requirements[i].Type == t {
			return s.Requirements[i].Required - s.Requirements[i].Current
		}
	}
	return 0
}

// StationReceive offers count units of t to the station and returns
// how many it accepted. Completed reports whether this call satisfied
// the last open requirement; a reusable station resets immediately
// after completing, a single-use station goes terminal.
func StationReceive(s *components.Station, t components.ItemType, count int) (accepted int, completed bool) {
	if count <= 0 || s.Complete {
		return 0, false
	}

	needed := StationNeeds(s, t)
	if needed <= 0 {
		return 0, false
	}

	// All-or-nothing stations take a type only when the offer covers
	// its full remaining need.
	if !s.AcceptPartial && count < needed {
		return 0, false
	}

	accepted = count
	if accepted > needed {
		accepted = needed
	}
	for i := range s.Requirements {
		if s.Requirements[i].Type == t {
			s.Requirements[i].Current += accepted
			break
		}
	}

	if !stationSatisfied(s) {
		return accepted, false
	}

	if s.Reusable {
		StationReset(s)
	} else {
		s.Complete = true
	}
	return accepted, true
}

func stationSatisfied(s *components.Station) bool {
	for i := range s.Requirements {
		if s.Requirements[i].Current < s.Requirements[i].Required {
			return false
		}
	}
	return true
}

// StationReset zeroes all requirement progress.
func StationReset(s *components.Station) {
	for i := range s.Requirements {
		s.Requirements[i].Current = 0
	}
	s.Complete = false
}

// StationProgress returns delivered and total required unit counts.
func StationProgress(s *components.Station) (current, total int) {
	for i := range s.Requirements {
		current += s.Requirements[i].Current
		total += s.Requirements[i].Required
	}
	return current, total
}

// StationComplete reports whether every requirement is satisfied. For
// single-use stations this is the terminal flag; reusable stations
// never report complete because they reset on the completing deposit.
func StationComplete(s *components.Station) bool {
	return s.Complete || stationSatisfied(s)
}
