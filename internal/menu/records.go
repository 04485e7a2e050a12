package menu

import "strconv"

// recordsScreen shows the Hall of Records: skills, achievements, and the
// player's fortune. Derived achievements are latched first so a fortune
// made at the bank or trading post shows up without a battle in between.
func (a *App) recordsScreen() {
	a.term.Clear()
	a.term.Header("Hall of Records")
	p := a.player
	p.EvaluateAchievements()

	a.term.Table([]string{"Skill", "XP", "Level"}, p.XP.Rows())
	a.term.Table([]string{"Achievement", ""}, p.Achievements.Rows())
	a.term.Table([]string{"", ""}, [][]string{
		{"Net Worth", strconv.Itoa(p.Bank.NetWorth())},
		{"Total Level", strconv.Itoa(p.XP.TotalLevel())},
	})
	a.term.Pause()
}
