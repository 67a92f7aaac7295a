package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	// Layout
	message.SetString(lang, "app.name", "Tabletop Utils")
	message.SetString(lang, "nav.home", "Inicio")
	message.SetString(lang, "nav.tracker", "Control de iniciativa")
	message.SetString(lang, "nav.theme_toggle", "Cambiar tema")
	message.SetString(lang, "nav.language", "Idioma")
	message.SetString(lang, "theme.light", "Claro")
	message.SetString(lang, "theme.dark", "Oscuro")

	// Landing page
	message.SetString(lang, "landing.title", "Tabletop Utils - Inicio")
	message.SetString(lang, "landing.tagline", "Pequeñas herramientas para dirigir partidas de rol de mesa.")
	message.SetString(lang, "landing.tracker_blurb", "Lleva el orden de turnos del combate, ordenado por posición e iniciativa.")
	message.SetString(lang, "landing.open_tracker", "Abrir control")

	// Tracker
	message.SetString(lang, "tracker.title", "Control de iniciativa")
	message.SetString(lang, "tracker.current_turn", "Turno actual")
	message.SetString(lang, "tracker.empty", "Aún no hay personajes. Añade uno para empezar.")
	message.SetString(lang, "tracker.add", "Añadir personaje")
	message.SetString(lang, "tracker.next_turn", "Siguiente turno")
	message.SetString(lang, "tracker.col_position", "Posición")
	message.SetString(lang, "tracker.col_name", "Nombre")
	message.SetString(lang, "tracker.col_initiative", "Iniciativa")
	message.SetString(lang, "tracker.col_actions", "Acciones")
	message.SetString(lang, "tracker.move_up", "Subir")
	message.SetString(lang, "tracker.move_down", "Bajar")
	message.SetString(lang, "tracker.set_position", "Fijar")
	message.SetString(lang, "tracker.delete", "Eliminar")
	message.SetString(lang, "tracker.delete_confirm", "¿Quitar este personaje de la iniciativa?")

	// Add form
	message.SetString(lang, "form.title", "Añadir personaje")
	message.SetString(lang, "form.name", "Nombre")
	message.SetString(lang, "form.name_placeholder", "p. ej., Explorador goblin")
	message.SetString(lang, "form.initiative", "Iniciativa")
	message.SetString(lang, "form.position", "Posición")
	message.SetString(lang, "form.submit", "Añadir a la iniciativa")
	message.SetString(lang, "form.cancel", "Cancelar")

	// Flash messages
	message.SetString(lang, "flash.added", "¡Personaje añadido a la iniciativa!")
	message.SetString(lang, "flash.removed", "Personaje eliminado de la iniciativa.")
	message.SetString(lang, "flash.next_up", "¡Siguiente: %s!")
	message.SetString(lang, "flash.position_updated", "¡Posición actualizada!")
	message.SetString(lang, "flash.not_found", "Ese personaje ya no está en el control.")

	// Validation
	message.SetString(lang, "empty name", "El nombre no puede estar vacío.")
	message.SetString(lang, "name too long", "El nombre debe tener como máximo 100 caracteres.")
	message.SetString(lang, "negative initiative", "La iniciativa no puede ser negativa.")
	message.SetString(lang, "negative position", "La posición no puede ser negativa.")
	message.SetString(lang, "position too large", "La posición debe ser como máximo 1.000.000.000.")
	message.SetString(lang, "position limit reached", "El orden de turnos está lleno. Mueve primero un personaje a una posición menor.")
	message.SetString(lang, "position must be an integer", "La posición debe ser un número entero.")
	message.SetString(lang, "initiative must be an integer", "La iniciativa debe ser un número entero.")
	message.SetString(lang, "direction must be increase or decrease", "La dirección debe ser increase o decrease.")
}
