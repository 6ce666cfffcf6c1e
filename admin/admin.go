// Package admin serves a minimal read oriented management UI for user
// accounts, rendered with the django view engine.
package admin

// Fieldset groups related fields on the user detail screen.
type Fieldset struct {
	Title  string
	Fields []string
}

// UserAdmin describes how user accounts are presented in the
// management UI.
type UserAdmin struct {
	Ordering       []string
	ListDisplay    []string
	SearchFields   []string
	ListFilter     []string
	Fieldsets      []Fieldset
	ReadonlyFields []string
	AddFields      []string
}

// DefaultUserAdmin returns the stock account presentation.
func DefaultUserAdmin() UserAdmin {
	return UserAdmin{
		Ordering: []string{"email"},
		ListDisplay: []string{
			"id", "email", "first_name", "last_name",
			"is_staff", "is_verified", "is_superuser", "auth_provider",
		},
		SearchFields: []string{"id", "email", "first_name", "last_name"},
		ListFilter:   []string{"is_active", "is_staff", "is_superuser"},
		Fieldsets: []Fieldset{
			{Title: "", Fields: []string{"email", "password"}},
			{Title: "Personal info", Fields: []string{"first_name", "last_name"}},
			{Title: "Permissions", Fields: []string{"is_active", "is_staff", "is_superuser", "is_verified"}},
			{Title: "Authentication Provider", Fields: []string{"auth_provider"}},
		},
		ReadonlyFields: []string{"created_at", "updated_at"},
		AddFields:      []string{"email", "first_name", "last_name", "password1", "password2"},
	}
}
