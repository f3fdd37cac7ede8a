package model

// DamageReport summarizes one punishment sweep that actually penalized
// quests. It is ephemeral: held in memory until the user acknowledges it,
// never persisted.
type DamageReport struct {
	XPLost int      `json:"xpLost"`
	Titles []string `json:"titles"`
}
