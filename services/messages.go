package services

// MessageCatalog holds the texts posted to pairs, per language.
type MessageCatalog struct {
	// Invitation takes the channel ID as its single %s verb.
	Invitation string
	Reminder   string
}

var catalogs = map[string]MessageCatalog{
	"en": {
		Invitation: ":wave: hi <!here>, sometimes it can be difficult to know all your colleagues, " +
			"so I take care of creating opportunities for a :coffee: and a chat among all members in <#%s>.\n" +
			"What do you think about a time to get to know each other better?",
		Reminder: ":slightly_smiling_face: hi <!here>, have you had the chance to schedule a time " +
			"for a :coffee: and a chat?",
	},
	"fr": {
		Invitation: ":wave: bonjour <!here>, il n'est pas toujours facile de connaître tous ses collègues, " +
			"alors je me charge de créer des occasions de prendre un :coffee: et de discuter entre membres de <#%s>.\n" +
			"Que diriez-vous d'un créneau pour mieux faire connaissance ?",
		Reminder: ":slightly_smiling_face: bonjour <!here>, avez-vous eu l'occasion de planifier un moment " +
			"pour un :coffee: et une discussion ?",
	},
}

// CatalogFor returns the catalog for language, falling back to English.
func CatalogFor(language string) MessageCatalog {
	if catalog, ok := catalogs[language]; ok {
		return catalog
	}
	return catalogs["en"]
}
