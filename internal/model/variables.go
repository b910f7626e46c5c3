package model

// Variables is the set of values substituted into the template. It is built
// once per run from the collected answers and passed by value afterwards.
type Variables struct {
	PackageName        string `yaml:"package_name"        json:"package_name"`
	PackageDescription string `yaml:"package_description" json:"package_description"`
	Namespace          string `yaml:"namespace"           json:"namespace"`
	AuthorName         string `yaml:"author_name"         json:"author_name"`
	AuthorEmail        string `yaml:"author_email"        json:"author_email"`
	AuthorUsername     string `yaml:"author_username"     json:"author_username"`
	AuthorWebsite      string `yaml:"author_website"      json:"author_website,omitempty"`
}

// Variable keys, shared by prompts and the answers file.
const (
	KeyPackageName        = "package_name"
	KeyPackageDescription = "package_description"
	KeyNamespace          = "namespace"
	KeyAuthorName         = "author_name"
	KeyAuthorEmail        = "author_email"
	KeyAuthorUsername     = "author_username"
	KeyAuthorWebsite      = "author_website"
)

// VariableKeys returns the keys in prompt order.
func VariableKeys() []string {
	return []string{
		KeyPackageName,
		KeyPackageDescription,
		KeyNamespace,
		KeyAuthorName,
		KeyAuthorEmail,
		KeyAuthorUsername,
		KeyAuthorWebsite,
	}
}

// Get returns the value stored under key.
func (v Variables) Get(key string) string {
	switch key {
	case KeyPackageName:
		return v.PackageName
	case KeyPackageDescription:
		return v.PackageDescription
	case KeyNamespace:
		return v.Namespace
	case KeyAuthorName:
		return v.AuthorName
	case KeyAuthorEmail:
		return v.AuthorEmail
	case KeyAuthorUsername:
		return v.AuthorUsername
	case KeyAuthorWebsite:
		return v.AuthorWebsite
	default:
		return ""
	}
}

// With returns a copy of v with key set to value. Unknown keys are ignored.
func (v Variables) With(key, value string) Variables {
	switch key {
	case KeyPackageName:
		v.PackageName = value
	case KeyPackageDescription:
		v.PackageDescription = value
	case KeyNamespace:
		v.Namespace = value
	case KeyAuthorName:
		v.AuthorName = value
	case KeyAuthorEmail:
		v.AuthorEmail = value
	case KeyAuthorUsername:
		v.AuthorUsername = value
	case KeyAuthorWebsite:
		v.AuthorWebsite = value
	}

	return v
}

// FromMap builds Variables from a key/value map.
func FromMap(values map[string]string) Variables {
	var v Variables
	for key, value := range values {
		v = v.With(key, value)
	}

	return v
}
