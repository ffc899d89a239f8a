package view

import (
	"github.com/mbaillet/immosim/internal/engine"
	"github.com/mbaillet/immosim/pkg/format"
)

// AlertView is one alert with the message picked for a locale.
type AlertView struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Message string `json:"message"`
}

// LocalizeAlerts picks the locale's message for each alert, preserving the
// engine's ordering. A missing localized message falls back to the other
// language rather than an empty string.
func LocalizeAlerts(alerts []engine.Alert, locale format.Locale) []AlertView {
	if len(alerts) == 0 {
		return nil
	}

	views := make([]AlertView, 0, len(alerts))
	for _, a := range alerts {
		message := a.MessageFR
		if locale == format.LocaleEN {
			message = a.MessageEN
		}
		if message == "" {
			if message = a.MessageEN; message == "" {
				message = a.MessageFR
			}
		}
		views = append(views, AlertView{Type: a.Type, Icon: a.Icon, Message: message})
	}
	return views
}
