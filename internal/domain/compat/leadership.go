package compat

import (
	"math"
	"sort"
	"strings"

	"talent-pulse/internal/domain/org"
	"talent-pulse/internal/domain/person"
)

const frictionThreshold = 40

var leadershipKeywords = []string{"manager", "head", "lead", "director", "ceo", "ad"}

// Distribution buckets alignment scores at <40 / 40-69 / >=70.
type Distribution struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

// TeamAlignment is one node's average alignment against its
// organizational superior.
type TeamAlignment struct {
	NodeID       string  `json:"node_id"`
	NodeName     string  `json:"node_name"`
	AverageScore float64 `json:"average_score"`
	PairCount    int     `json:"pair_count"`
}

// LeadershipAnalytics aggregates person-to-superior compatibility
// across the whole tree.
type LeadershipAnalytics struct {
	GlobalAlignmentIndex float64         `json:"global_alignment_index"`
	FrictionRate         float64         `json:"friction_rate"`
	Distribution         Distribution    `json:"distribution"`
	TeamAlignment        []TeamAlignment `json:"team_alignment"`
	PairCount            int             `json:"pair_count"`
}

// AnalyzeLeadership compares every non-manager occupant of each
// non-root node against the manager of the PARENT node. The
// cross-level comparison is deliberate: it measures fit with the
// actual organizational superior, not with peers.
func AnalyzeLeadership(root *org.Node, people []person.Person) LeadershipAnalytics {
	byUnit := make(map[string][]person.Person)
	for _, p := range people {
		byUnit[p.DepartmentID] = append(byUnit[p.DepartmentID], p)
	}

	managers := make(map[string]*person.Person)
	org.Walk(root, func(n, _ *org.Node) {
		managers[n.ID] = managerOf(n, byUnit[n.ID])
	})

	var scores []int
	teams := make([]TeamAlignment, 0)
	org.Walk(root, func(n, parent *org.Node) {
		if parent == nil {
			return
		}
		superior := managers[parent.ID]
		if superior == nil {
			return
		}

		nodeMgr := managers[n.ID]
		teamScores := make([]int, 0)
		for _, occ := range sortPeopleByID(byUnit[n.ID]) {
			if nodeMgr != nil && occ.ID == nodeMgr.ID {
				continue
			}
			s := Compare(occ, *superior).Score
			scores = append(scores, s)
			teamScores = append(teamScores, s)
		}

		if len(teamScores) > 0 {
			sum := 0
			for _, s := range teamScores {
				sum += s
			}
			teams = append(teams, TeamAlignment{
				NodeID:       n.ID,
				NodeName:     n.Name,
				AverageScore: round1(float64(sum) / float64(len(teamScores))),
				PairCount:    len(teamScores),
			})
		}
	})

	out := LeadershipAnalytics{TeamAlignment: teams, PairCount: len(scores)}
	if len(scores) == 0 {
		return out
	}

	sum := 0
	friction := 0
	for _, s := range scores {
		sum += s
		switch {
		case s < frictionThreshold:
			friction++
			out.Distribution.Low++
		case s < 70:
			out.Distribution.Mid++
		default:
			out.Distribution.High++
		}
	}
	out.GlobalAlignmentIndex = round1(float64(sum) / float64(len(scores)))
	out.FrictionRate = round1(float64(friction) / float64(len(scores)) * 100)

	// Worst-aligned teams first.
	sort.SliceStable(out.TeamAlignment, func(i, j int) bool {
		return out.TeamAlignment[i].AverageScore < out.TeamAlignment[j].AverageScore
	})
	return out
}

// managerOf picks a node's manager among its occupants: for cultural
// drivers, the first interviewed occupant; otherwise the first whose
// job title carries a leadership keyword; otherwise the first occupant
// outright. Occupants are ordered by ID so the result is deterministic.
// The bare "first occupant" fallback is a stand-in pending an explicit
// manager field on the org model.
func managerOf(n *org.Node, occupants []person.Person) *person.Person {
	if len(occupants) == 0 {
		return nil
	}
	sorted := sortPeopleByID(occupants)

	if n.IsCulturalDriver {
		for i := range sorted {
			if sorted[i].Karma != nil {
				return &sorted[i]
			}
		}
	}

	for i := range sorted {
		title := strings.ToLower(sorted[i].JobTitle)
		for _, kw := range leadershipKeywords {
			if strings.Contains(title, kw) {
				return &sorted[i]
			}
		}
	}

	return &sorted[0]
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
