package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	// Layout
	message.SetString(lang, "app.name", "Tabletop Utils")
	message.SetString(lang, "nav.home", "Start")
	message.SetString(lang, "nav.tracker", "Initiative-Tracker")
	message.SetString(lang, "nav.theme_toggle", "Design wechseln")
	message.SetString(lang, "nav.language", "Sprache")
	message.SetString(lang, "theme.light", "Hell")
	message.SetString(lang, "theme.dark", "Dunkel")

	// Landing page
	message.SetString(lang, "landing.title", "Tabletop Utils - Start")
	message.SetString(lang, "landing.tagline", "Kleine Werkzeuge für Pen-and-Paper-Runden.")
	message.SetString(lang, "landing.tracker_blurb", "Behalte die Zugreihenfolge im Kampf im Blick, sortiert nach Position und Initiative.")
	message.SetString(lang, "landing.open_tracker", "Tracker öffnen")

	// Tracker
	message.SetString(lang, "tracker.title", "Initiative-Tracker")
	message.SetString(lang, "tracker.current_turn", "Aktueller Zug")
	message.SetString(lang, "tracker.empty", "Noch keine Charaktere. Füge einen hinzu, um zu beginnen.")
	message.SetString(lang, "tracker.add", "Charakter hinzufügen")
	message.SetString(lang, "tracker.next_turn", "Nächster Zug")
	message.SetString(lang, "tracker.col_position", "Position")
	message.SetString(lang, "tracker.col_name", "Name")
	message.SetString(lang, "tracker.col_initiative", "Initiative")
	message.SetString(lang, "tracker.col_actions", "Aktionen")
	message.SetString(lang, "tracker.move_up", "Nach oben")
	message.SetString(lang, "tracker.move_down", "Nach unten")
	message.SetString(lang, "tracker.set_position", "Setzen")
	message.SetString(lang, "tracker.delete", "Löschen")
	message.SetString(lang, "tracker.delete_confirm", "Diesen Charakter aus der Initiative entfernen?")

	// Add form
	message.SetString(lang, "form.title", "Charakter hinzufügen")
	message.SetString(lang, "form.name", "Name")
	message.SetString(lang, "form.name_placeholder", "z. B. Goblin-Späher")
	message.SetString(lang, "form.initiative", "Initiative")
	message.SetString(lang, "form.position", "Position")
	message.SetString(lang, "form.submit", "Zur Initiative hinzufügen")
	message.SetString(lang, "form.cancel", "Abbrechen")

	// Flash messages
	message.SetString(lang, "flash.added", "Charakter zur Initiative hinzugefügt!")
	message.SetString(lang, "flash.removed", "Charakter aus der Initiative entfernt.")
	message.SetString(lang, "flash.next_up", "Als Nächstes: %s!")
	message.SetString(lang, "flash.position_updated", "Position aktualisiert!")
	message.SetString(lang, "flash.not_found", "Dieser Charakter ist nicht mehr im Tracker.")

	// Validation
	message.SetString(lang, "empty name", "Der Name darf nicht leer sein.")
	message.SetString(lang, "name too long", "Der Name darf höchstens 100 Zeichen lang sein.")
	message.SetString(lang, "negative initiative", "Die Initiative darf nicht negativ sein.")
	message.SetString(lang, "negative position", "Die Position darf nicht negativ sein.")
	message.SetString(lang, "position too large", "Die Position darf höchstens 1.000.000.000 sein.")
	message.SetString(lang, "position limit reached", "Die Zugreihenfolge ist voll. Verschiebe zuerst einen Charakter auf eine niedrigere Position.")
	message.SetString(lang, "position must be an integer", "Die Position muss eine ganze Zahl sein.")
	message.SetString(lang, "initiative must be an integer", "Die Initiative muss eine ganze Zahl sein.")
	message.SetString(lang, "direction must be increase or decrease", "Die Richtung muss increase oder decrease sein.")
}
