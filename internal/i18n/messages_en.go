package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "app.name", "Tabletop Utils")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.tracker", "Initiative Tracker")
	message.SetString(lang, "nav.theme_toggle", "Toggle theme")
	message.SetString(lang, "nav.language", "Language")
	message.SetString(lang, "theme.light", "Light")
	message.SetString(lang, "theme.dark", "Dark")

	// Landing page
	message.SetString(lang, "landing.title", "Tabletop Utils - Home")
	message.SetString(lang, "landing.tagline", "Small tools for running tabletop role-playing sessions.")
	message.SetString(lang, "landing.tracker_blurb", "Keep combat turn order at the table, sorted by position and initiative.")
	message.SetString(lang, "landing.open_tracker", "Open tracker")

	// Tracker
	message.SetString(lang, "tracker.title", "Initiative Tracker")
	message.SetString(lang, "tracker.current_turn", "Current Turn")
	message.SetString(lang, "tracker.empty", "No characters yet. Add one to start tracking initiative.")
	message.SetString(lang, "tracker.add", "Add Character")
	message.SetString(lang, "tracker.next_turn", "Next Turn")
	message.SetString(lang, "tracker.col_position", "Position")
	message.SetString(lang, "tracker.col_name", "Name")
	message.SetString(lang, "tracker.col_initiative", "Initiative")
	message.SetString(lang, "tracker.col_actions", "Actions")
	message.SetString(lang, "tracker.move_up", "Move up")
	message.SetString(lang, "tracker.move_down", "Move down")
	message.SetString(lang, "tracker.set_position", "Set")
	message.SetString(lang, "tracker.delete", "Delete")
	message.SetString(lang, "tracker.delete_confirm", "Remove this character from initiative?")

	// Add form
	message.SetString(lang, "form.title", "Add Character")
	message.SetString(lang, "form.name", "Name")
	message.SetString(lang, "form.name_placeholder", "e.g., Goblin Scout")
	message.SetString(lang, "form.initiative", "Initiative")
	message.SetString(lang, "form.position", "Position")
	message.SetString(lang, "form.submit", "Add to initiative")
	message.SetString(lang, "form.cancel", "Cancel")

	// Flash messages
	message.SetString(lang, "flash.added", "Character added to initiative!")
	message.SetString(lang, "flash.removed", "Character removed from initiative.")
	message.SetString(lang, "flash.next_up", "Next up: %s!")
	message.SetString(lang, "flash.position_updated", "Position updated!")
	message.SetString(lang, "flash.not_found", "That character is no longer in the tracker.")

	// Validation
	message.SetString(lang, "empty name", "Name cannot be empty.")
	message.SetString(lang, "name too long", "Name must be at most 100 characters.")
	message.SetString(lang, "negative initiative", "Initiative cannot be negative.")
	message.SetString(lang, "negative position", "Position cannot be negative.")
	message.SetString(lang, "position too large", "Position must be at most 1,000,000,000.")
	message.SetString(lang, "position limit reached", "The turn order is full. Move a character to a lower position first.")
	message.SetString(lang, "position must be an integer", "Position must be a whole number.")
	message.SetString(lang, "initiative must be an integer", "Initiative must be a whole number.")
	message.SetString(lang, "direction must be increase or decrease", "Direction must be increase or decrease.")
}
