// Package catalog holds the static, read-only sport registry. The data is
// trusted: every sport carries an ordered, non-empty formation list and every
// formation a non-empty slot list with labels unique within that formation.
package catalog

import "github.com/ZachR72/Lineup-Maker/internal/entities"

var sports = []entities.Sport{
	{
		ID:       entities.SportSoccer,
		Name:     "Soccer",
		Icon:     "⚽",
		Examples: []string{"Manchester City", "Real Madrid", "Liverpool FC", "FC Barcelona", "Bayern Munich"},
		Formations: []entities.Formation{
			{
				Name: "4-4-2 Wide",
				Slots: []entities.Slot{
					{Label: "GK", X: 50, Y: 135},
					{Label: "LB", X: 15, Y: 110}, {Label: "LCB", X: 35, Y: 115},
					{Label: "RCB", X: 65, Y: 115}, {Label: "RB", X: 85, Y: 110},
					{Label: "LM", X: 15, Y: 75}, {Label: "LCM", X: 38, Y: 80},
					{Label: "RCM", X: 62, Y: 80}, {Label: "RM", X: 85, Y: 75},
					{Label: "LST", X: 32, Y: 35}, {Label: "RST", X: 68, Y: 35},
				},
			},
			{
				Name: "4-3-3 Spread",
				Slots: []entities.Slot{
					{Label: "GK", X: 50, Y: 135},
					{Label: "LB", X: 15, Y: 108}, {Label: "LCB", X: 35, Y: 118},
					{Label: "RCB", X: 65, Y: 118}, {Label: "RB", X: 85, Y: 108},
					{Label: "CDM", X: 50, Y: 90}, {Label: "LCM", X: 28, Y: 68},
					{Label: "RCM", X: 72, Y: 68}, {Label: "LW", X: 18, Y: 28},
					{Label: "RW", X: 82, Y: 28}, {Label: "ST", X: 50, Y: 20},
				},
			},
		},
	},
	{
		ID:       entities.SportBasketball,
		Name:     "Basketball",
		Icon:     "🏀",
		Examples: []string{"Los Angeles Lakers", "Golden State Warriors", "Boston Celtics", "Chicago Bulls", "Miami Heat"},
		Formations: []entities.Formation{
			{
				Name: "Man-to-Man",
				Slots: []entities.Slot{
					{Label: "PG", X: 50, Y: 105}, {Label: "SG", X: 20, Y: 85}, {Label: "SF", X: 80, Y: 85},
					{Label: "PF", X: 30, Y: 50}, {Label: "C", X: 70, Y: 50},
				},
			},
			{
				Name: "2-3 Zone",
				Slots: []entities.Slot{
					{Label: "LG", X: 35, Y: 100}, {Label: "RG", X: 65, Y: 100}, {Label: "LF", X: 15, Y: 65},
					{Label: "RF", X: 85, Y: 65}, {Label: "C", X: 50, Y: 50},
				},
			},
		},
	},
	{
		ID:       entities.SportHockey,
		Name:     "Hockey",
		Icon:     "🏒",
		Examples: []string{"Montreal Canadiens", "Toronto Maple Leafs", "Chicago Blackhawks", "Detroit Red Wings", "Boston Bruins"},
		Formations: []entities.Formation{
			{
				Name: "Standard 5v5",
				Slots: []entities.Slot{
					{Label: "G", X: 50, Y: 130}, {Label: "LD", X: 25, Y: 105}, {Label: "RD", X: 75, Y: 105},
					{Label: "LW", X: 15, Y: 55}, {Label: "C", X: 50, Y: 60}, {Label: "RW", X: 85, Y: 55},
				},
			},
			{
				Name: "Power Play (1-3-1)",
				Slots: []entities.Slot{
					{Label: "G", X: 50, Y: 130}, {Label: "D", X: 50, Y: 100}, {Label: "LW", X: 15, Y: 65},
					{Label: "RW", X: 85, Y: 65}, {Label: "B", X: 50, Y: 55}, {Label: "C", X: 50, Y: 25},
				},
			},
		},
	},
	{
		ID:       entities.SportFootball,
		Name:     "Football",
		Icon:     "🏈",
		Examples: []string{"Kansas City Chiefs", "Dallas Cowboys", "SF 49ers", "NE Patriots", "Pittsburgh Steelers"},
		Formations: []entities.Formation{
			{
				Name: "Shotgun Spread",
				Slots: []entities.Slot{
					{Label: "C", X: 50, Y: 45},
					{Label: "LG", X: 40, Y: 45},
					{Label: "RG", X: 60, Y: 45},
					{Label: "LT", X: 30, Y: 45},
					{Label: "RT", X: 70, Y: 45},
					{Label: "WR1", X: 8, Y: 32},
					{Label: "WR2", X: 22, Y: 32},
					{Label: "WR3", X: 78, Y: 32},
					{Label: "WR4", X: 92, Y: 32},
					{Label: "QB", X: 50, Y: 76},
					{Label: "RB", X: 38, Y: 76},
				},
			},
			{
				Name: "Base 3-4 Defense",
				Slots: []entities.Slot{
					{Label: "NT", X: 50, Y: 43},
					{Label: "LDE", X: 38, Y: 43},
					{Label: "RDE", X: 62, Y: 43},
					{Label: "LOLB", X: 20, Y: 55},
					{Label: "ROLB", X: 80, Y: 55},
					{Label: "LILB", X: 42, Y: 65},
					{Label: "RILB", X: 58, Y: 65},
					{Label: "LCB", X: 10, Y: 40},
					{Label: "RCB", X: 90, Y: 40},
					{Label: "FS", X: 30, Y: 28},
					{Label: "SS", X: 70, Y: 28},
				},
			},
			{
				Name: "Nickel 2-4-5",
				Slots: []entities.Slot{
					{Label: "LDT", X: 46, Y: 58},
					{Label: "RDT", X: 54, Y: 58},
					{Label: "LOLB", X: 22, Y: 55},
					{Label: "ROLB", X: 78, Y: 55},
					{Label: "LILB", X: 44, Y: 70},
					{Label: "RILB", X: 56, Y: 70},
					{Label: "LCB", X: 10, Y: 42},
					{Label: "RCB", X: 90, Y: 42},
					{Label: "NIC", X: 50, Y: 40},
					{Label: "FS", X: 32, Y: 25},
					{Label: "SS", X: 68, Y: 25},
				},
			},
		},
	},
	{
		ID:       entities.SportBaseball,
		Name:     "Baseball",
		Icon:     "⚾",
		Examples: []string{"NY Yankees", "LA Dodgers", "Boston Red Sox", "Chicago Cubs", "St. Louis Cardinals"},
		Formations: []entities.Formation{
			{
				Name: "Standard Defense",
				Slots: []entities.Slot{
					{Label: "P", X: 50, Y: 65}, {Label: "C", X: 50, Y: 92}, {Label: "1B", X: 80, Y: 68},
					{Label: "2B", X: 68, Y: 50}, {Label: "SS", X: 32, Y: 50}, {Label: "3B", X: 20, Y: 68},
					{Label: "LF", X: 18, Y: 32}, {Label: "CF", X: 50, Y: 18}, {Label: "RF", X: 82, Y: 32},
				},
			},
		},
	},
}

// Sports returns the full catalog in registry order.
func Sports() []entities.Sport {
	out := make([]entities.Sport, len(sports))
	copy(out, sports)
	return out
}

// SportByID looks up a sport by identifier.
func SportByID(id entities.SportID) (entities.Sport, bool) {
	for _, s := range sports {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Sport{}, false
}

// FormationAt returns the sport's formation at idx, falling back to the first
// formation when idx is out of range.
func FormationAt(sport entities.Sport, idx int) entities.Formation {
	if idx < 0 || idx >= len(sport.Formations) {
		return sport.Formations[0]
	}
	return sport.Formations[idx]
}
