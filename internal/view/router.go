package view

import "sync"

// ID identifies a renderable screen. The set is closed: Resolve maps every
// possible path string onto exactly one of these, so no navigation state is
// ever undefined.
type ID string

const (
	Dashboard        ID = "dashboard"
	Projects         ID = "projects"
	CreateProject    ID = "create-project"
	Marketplace      ID = "marketplace"
	Analytics        ID = "analytics"
	SiteUpdate       ID = "site-update"
	SiteVerification ID = "site-verification"
	UserManagement   ID = "user-management"
	CompanyProfile   ID = "company-profile"
	AccountSettings  ID = "account-settings"
	MyProfile        ID = "my-profile"
	Integrations     ID = "integrations"
	UploadDocuments  ID = "upload-documents"
	Services         ID = "services"
	About            ID = "about"
	Contact          ID = "contact"
	Payment          ID = "payment"
	NotFound         ID = "not-found"
)

// DefaultPath is the path shown when the authenticated shell first renders.
const DefaultPath = "/dashboard"

var pathViews = map[string]ID{
	"/dashboard":         Dashboard,
	"/projects":          Projects,
	"/create-project":    CreateProject,
	"/marketplace":       Marketplace,
	"/analytics":         Analytics,
	"/site-update":       SiteUpdate,
	"/site-verification": SiteVerification,
	"/user-management":   UserManagement,
	"/company-profile":   CompanyProfile,
	"/account-settings":  AccountSettings,
	"/my-profile":        MyProfile,
	"/integrations":      Integrations,
	"/upload-documents":  UploadDocuments,
	"/services":          Services,
	"/about":             About,
	"/contact":           Contact,
	"/payment":           Payment,
}

// Resolve maps a path to a view. Total: unknown paths resolve to NotFound,
// never an error.
func Resolve(path string) ID {
	if v, ok := pathViews[path]; ok {
		return v
	}
	return NotFound
}

// Router holds the current path, the only navigation state there is. There
// is no back-stack.
type Router struct {
	mu         sync.Mutex
	current    string
	leaveHooks []func(path string)
}

// NewRouter creates a router positioned at the default path.
func NewRouter() *Router {
	return &Router{current: DefaultPath}
}

// Current returns the current path.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// CurrentView resolves the current path.
func (r *Router) CurrentView() ID {
	return Resolve(r.Current())
}

// Navigate sets the current path unconditionally; the target need not be a
// known view. Leave hooks run for the path being left, which is how pending
// simulated work bound to the departed view gets cancelled.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	prev := r.current
	r.current = path
	hooks := r.leaveHooks
	r.mu.Unlock()

	if prev == path {
		return
	}
	for _, hook := range hooks {
		hook(prev)
	}
}

// OnLeave registers a hook invoked with the departed path on every
// navigation that changes the current path.
func (r *Router) OnLeave(fn func(path string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveHooks = append(r.leaveHooks, fn)
}

// Reset returns the router to the default path. Used on logout, when the
// authenticated shell is torn down; leave hooks still run so nothing stays
// pending against the abandoned view.
func (r *Router) Reset() {
	r.Navigate(DefaultPath)
}
