package notify

// Settings holds the user's reminder preferences plus the observed platform
// permission. Permission is never set directly by callers; it tracks the
// platform and is only refreshed through Load and RequestPermission.
type Settings struct {
	Enabled    bool       `json:"enabled"`
	LeadDays   int        `json:"lead_days"`
	Permission Permission `json:"permission"`
}

// SettingsPatch is a partial settings update; nil fields keep their value.
type SettingsPatch struct {
	Enabled  *bool `json:"enabled"`
	LeadDays *int  `json:"lead_days"`
}

// validLeadDays reports whether the lead window is one of the supported
// choices.
func validLeadDays(days int) bool {
	return days == 1 || days == 3 || days == 7
}

func defaultSettings() Settings {
	return Settings{
		Enabled:    false,
		LeadDays:   1,
		Permission: PermissionDefault,
	}
}

func (s Settings) apply(patch SettingsPatch) Settings {
	if patch.Enabled != nil {
		s.Enabled = *patch.Enabled
	}
	if patch.LeadDays != nil {
		s.LeadDays = *patch.LeadDays
	}
	return s
}
