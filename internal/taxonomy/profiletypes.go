package taxonomy

// ProfileType is one entry of the fixed profile-type enumeration.
type ProfileType struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ProfileTypes is the 8-entry profile-type table shown in step 1 of the wizard.
var ProfileTypes = []ProfileType{
	{Value: "entreprise", Label: "Entreprise", Description: "Société établie avec structure formelle", Icon: "🏢"},
	{Value: "freelance", Label: "Freelance", Description: "Professionnel indépendant", Icon: "💼"},
	{Value: "pme", Label: "PME", Description: "Petite et Moyenne Entreprise", Icon: "🏪"},
	{Value: "artisan", Label: "Artisan", Description: "Métier manuel et savoir-faire", Icon: "🔨"},
	{Value: "ONG", Label: "ONG", Description: "Organisation non gouvernementale", Icon: "🤝"},
	{Value: "cabinet", Label: "Cabinet", Description: "Cabinet de conseil ou services", Icon: "📊"},
	{Value: "organisation", Label: "Organisation", Description: "Association ou collectif", Icon: "🌍"},
	{Value: "autre", Label: "Autre", Description: "Autre type d'activité", Icon: "✨"},
}

// GetProfileType returns the entry matching value, or nil if the value is not part
// of the enumeration.
func GetProfileType(value string) *ProfileType {
	for i := range ProfileTypes {
		if ProfileTypes[i].Value == value {
			return &ProfileTypes[i]
		}
	}
	return nil
}

// IsValidProfileType reports whether value is part of the fixed enumeration.
func IsValidProfileType(value string) bool {
	return GetProfileType(value) != nil
}
