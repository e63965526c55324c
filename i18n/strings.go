// Package i18n holds the user-facing string tables. Spanish is the primary
// language and the fallback for untranslated keys.
package i18n

import "prototype-creator/model"

// Entry maps language codes to a translated string.
type Entry map[string]string

// Get returns the translation for the given language, falling back to
// Spanish and then to the empty string.
func (e Entry) Get(lang model.Language) string {
	if v, ok := e[lang.Code]; ok {
		return v
	}
	return e["es"]
}

var (
	GalleryTitle     = Entry{"es": "Mis Prototipos", "en": "My Prototypes"}
	NoPrototypes     = Entry{"es": "Aún no tienes prototipos", "en": "No prototypes yet"}
	CreateFirst      = Entry{"es": "Crea tu primer prototipo desde el chat", "en": "Create your first prototype from the chat"}
	Loading          = Entry{"es": "Cargando...", "en": "Loading..."}
	ErrorTitle       = Entry{"es": "Error", "en": "Error"}
	Retry            = Entry{"es": "Reintentar", "en": "Retry"}
	Cancel           = Entry{"es": "Cancelar", "en": "Cancel"}
	GoToChat         = Entry{"es": "Ir al chat", "en": "Go to chat"}
	SearchHint       = Entry{"es": "Buscar prototipos...", "en": "Search prototypes..."}
	SortNewest       = Entry{"es": "Más recientes", "en": "Newest first"}
	SortOldest       = Entry{"es": "Más antiguos", "en": "Oldest first"}
	SortName         = Entry{"es": "Por nombre", "en": "By name"}
	SortFavorites    = Entry{"es": "Favoritos primero", "en": "Favorites first"}
	CreatedOn        = Entry{"es": "Creado", "en": "Created"}
	AddFavorite      = Entry{"es": "Marcar favorito", "en": "Add favorite"}
	RemoveFavorite   = Entry{"es": "Quitar favorito", "en": "Remove favorite"}
	Delete           = Entry{"es": "Eliminar", "en": "Delete"}
	DeleteConfirm    = Entry{"es": "¿Eliminar este prototipo? Esta acción no se puede deshacer.", "en": "Delete this prototype? This cannot be undone."}
	Back             = Entry{"es": "Volver", "en": "Back"}
	ChatTitle        = Entry{"es": "Asistente de Prototipos", "en": "Prototype Assistant"}
	ChatPlaceholder  = Entry{"es": "Describe tu idea de aplicación...", "en": "Describe your app idea..."}
	WelcomeMessage   = Entry{"es": "¡Hola! Soy tu asistente de IA. Cuéntame tu idea de aplicación y te ayudaré a convertirla en un prototipo.", "en": "Hi! I'm your AI assistant. Tell me your app idea and I'll help you turn it into a prototype."}
	Send             = Entry{"es": "Enviar", "en": "Send"}
	Typing           = Entry{"es": "Escribiendo...", "en": "Typing..."}
	GeneratedBanner  = Entry{"es": "✨ Prototipo generado", "en": "✨ Prototype generated"}
	TapToView        = Entry{"es": "Toca para ver", "en": "Tap to view"}
	ConfirmButton    = Entry{"es": "Sí, continúa", "en": "Yes, continue"}
	ExportHTML       = Entry{"es": "Exportar HTML", "en": "Export HTML"}
	ExportPDF        = Entry{"es": "Exportar PDF", "en": "Export PDF"}
	Preview          = Entry{"es": "Vista previa", "en": "Preview"}
	SettingsTitle    = Entry{"es": "Ajustes", "en": "Settings"}
	DarkMode         = Entry{"es": "Tema oscuro", "en": "Dark theme"}
	LanguageLabel    = Entry{"es": "Idioma", "en": "Language"}
	BackendSection   = Entry{"es": "Conexión", "en": "Backend"}
	SaveFile         = Entry{"es": "Guardar archivo", "en": "Save file"}
	ExportSuccess    = Entry{"es": "Exportado correctamente a %s", "en": "Exported successfully to %s"}
	ExportError      = Entry{"es": "No se pudo exportar: %s", "en": "Export failed: %s"}
	ExportCancelled  = Entry{"es": "Exportación cancelada", "en": "Export cancelled"}
	ConnectionError  = Entry{"es": "No se pudo conectar con el servidor. Inténtalo de nuevo.", "en": "Could not reach the server. Please try again."}
	EmptyReplyError  = Entry{"es": "El asistente no devolvió respuesta. Inténtalo de nuevo.", "en": "The assistant returned no reply. Please try again."}
	PrototypeMissing = Entry{"es": "No se encontró el prototipo", "en": "Prototype not found"}
)
