package taxonomy

import "strings"

// Tag is one skill label from the fixed taxonomy. Value doubles as the display
// string and the stored value.
type Tag struct {
	Value    string `json:"value"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// CategoryNames maps category keys to display names.
var CategoryNames = map[string]string{
	"tech":        "Tech & Digital",
	"artisanat":   "Artisanat & Mode",
	"business":    "Business & Conseil",
	"agriculture": "Agriculture & Agro",
	"services":    "Services",
	"creatif":     "Créatif & Média",
	"commerce":    "Commerce & Vente",
	"social":      "Social & Éducation",
}

// AvailableTags is the complete skill-tag taxonomy, grouped by category.
var AvailableTags = []Tag{
	// Tech & Digital
	{Value: "Développement", Icon: "💻", Category: "tech"},
	{Value: "Web", Icon: "🌐", Category: "tech"},
	{Value: "Mobile", Icon: "📱", Category: "tech"},
	{Value: "React", Icon: "⚛️", Category: "tech"},
	{Value: "Python", Icon: "🐍", Category: "tech"},
	{Value: "EdTech", Icon: "🎓", Category: "tech"},
	{Value: "E-learning", Icon: "🖥️", Category: "tech"},
	{Value: "Numérique", Icon: "🔢", Category: "tech"},
	{Value: "Internet", Icon: "📡", Category: "tech"},
	{Value: "Tech", Icon: "⚙️", Category: "tech"},

	// Artisanat & Mode
	{Value: "Artisanat", Icon: "🧵", Category: "artisanat"},
	{Value: "Textile", Icon: "🪡", Category: "artisanat"},
	{Value: "Mode", Icon: "👗", Category: "artisanat"},
	{Value: "Couture", Icon: "✂️", Category: "artisanat"},
	{Value: "Bogolan", Icon: "🎨", Category: "artisanat"},
	{Value: "Menuiserie", Icon: "🪚", Category: "artisanat"},
	{Value: "Bois", Icon: "🪵", Category: "artisanat"},
	{Value: "Meubles", Icon: "🪑", Category: "artisanat"},
	{Value: "Maroquinerie", Icon: "👜", Category: "artisanat"},
	{Value: "Cuir", Icon: "🥾", Category: "artisanat"},
	{Value: "Sacs", Icon: "🎒", Category: "artisanat"},

	// Business & Conseil
	{Value: "Conseil", Icon: "🧭", Category: "business"},
	{Value: "Juridique", Icon: "⚖️", Category: "business"},
	{Value: "Fiscal", Icon: "🧾", Category: "business"},
	{Value: "Droit", Icon: "📜", Category: "business"},
	{Value: "Business", Icon: "📈", Category: "business"},
	{Value: "Comptabilité", Icon: "🧮", Category: "business"},
	{Value: "Audit", Icon: "🔍", Category: "business"},
	{Value: "Finance", Icon: "💰", Category: "business"},
	{Value: "Gestion", Icon: "🗂️", Category: "business"},
	{Value: "RH", Icon: "🧑‍💼", Category: "business"},
	{Value: "Recrutement", Icon: "🤝", Category: "business"},
	{Value: "Management", Icon: "🏛️", Category: "business"},

	// Agriculture & Agro
	{Value: "Agriculture", Icon: "🌾", Category: "agriculture"},
	{Value: "Export", Icon: "🚢", Category: "agriculture"},
	{Value: "Cacao", Icon: "🍫", Category: "agriculture"},
	{Value: "Café", Icon: "☕", Category: "agriculture"},
	{Value: "Karité", Icon: "🧴", Category: "agriculture"},
	{Value: "Naturel", Icon: "🌿", Category: "agriculture"},

	// Services
	{Value: "Transport", Icon: "🚚", Category: "services"},
	{Value: "Logistique", Icon: "📦", Category: "services"},
	{Value: "Livraison", Icon: "🛵", Category: "services"},
	{Value: "Fret", Icon: "🚛", Category: "services"},
	{Value: "Services", Icon: "🛎️", Category: "services"},
	{Value: "Traduction", Icon: "🗣️", Category: "services"},
	{Value: "Interprétation", Icon: "🎧", Category: "services"},
	{Value: "Langues", Icon: "🔤", Category: "services"},
	{Value: "Construction", Icon: "🏗️", Category: "services"},
	{Value: "Bâtiment", Icon: "🧱", Category: "services"},
	{Value: "BTP", Icon: "🦺", Category: "services"},
	{Value: "Rénovation", Icon: "🔧", Category: "services"},
	{Value: "Immobilier", Icon: "🏠", Category: "services"},
	{Value: "Solaire", Icon: "☀️", Category: "services"},
	{Value: "Énergie", Icon: "⚡", Category: "services"},
	{Value: "Renouvelable", Icon: "♻️", Category: "services"},
	{Value: "Installation", Icon: "🔌", Category: "services"},
	{Value: "Impression", Icon: "🖨️", Category: "services"},

	// Créatif & Média
	{Value: "Design", Icon: "🎨", Category: "creatif"},
	{Value: "UI/UX", Icon: "🖌️", Category: "creatif"},
	{Value: "Branding", Icon: "🏷️", Category: "creatif"},
	{Value: "Logo", Icon: "🔰", Category: "creatif"},
	{Value: "Illustration", Icon: "✏️", Category: "creatif"},
	{Value: "Photographie", Icon: "📷", Category: "creatif"},
	{Value: "Vidéo", Icon: "🎬", Category: "creatif"},
	{Value: "Événements", Icon: "🎪", Category: "creatif"},
	{Value: "Mariages", Icon: "💍", Category: "creatif"},
	{Value: "Corporate", Icon: "🏢", Category: "creatif"},
	{Value: "Communication", Icon: "📣", Category: "creatif"},

	// Commerce & Vente
	{Value: "Commerce", Icon: "🛒", Category: "commerce"},
	{Value: "Marketing", Icon: "📊", Category: "commerce"},
	{Value: "SEO", Icon: "🔎", Category: "commerce"},
	{Value: "Social Media", Icon: "💬", Category: "commerce"},
	{Value: "Publicité", Icon: "📢", Category: "commerce"},
	{Value: "Content", Icon: "📝", Category: "commerce"},
	{Value: "Cosmétiques", Icon: "💄", Category: "commerce"},
	{Value: "Beauty", Icon: "💅", Category: "commerce"},

	// Social & Éducation
	{Value: "Éducation", Icon: "📚", Category: "social"},
	{Value: "Formation", Icon: "🏫", Category: "social"},
	{Value: "Social", Icon: "🫂", Category: "social"},
	{Value: "Alphabétisation", Icon: "🔡", Category: "social"},
	{Value: "ONG", Icon: "🌍", Category: "social"},
	{Value: "Femmes", Icon: "👩", Category: "social"},
	{Value: "Entrepreneuriat", Icon: "🚀", Category: "social"},
	{Value: "Mentorat", Icon: "🧑‍🏫", Category: "social"},
	{Value: "Association", Icon: "🤲", Category: "social"},
}

// TagsByCategory returns the tags belonging to a category key.
func TagsByCategory(category string) []Tag {
	var out []Tag
	for _, t := range AvailableTags {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FindTag returns the taxonomy entry for a tag value, or nil if unknown.
func FindTag(value string) *Tag {
	for i := range AvailableTags {
		if AvailableTags[i].Value == value {
			return &AvailableTags[i]
		}
	}
	return nil
}

// FilterTags narrows the candidate list by category key ("all" or "" means every
// category) and by case-insensitive substring match on the tag value. The two
// filters combine independently.
func FilterTags(query, category string) []Tag {
	tags := AvailableTags
	if category != "" && category != "all" {
		tags = TagsByCategory(category)
	}
	if query == "" {
		return tags
	}
	q := strings.ToLower(query)
	var out []Tag
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t.Value), q) {
			out = append(out, t)
		}
	}
	return out
}
