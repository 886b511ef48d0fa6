// Package uispec models the declarative UI specification documents rendered
// by the frontend SDK. A document is a tree of typed nodes; each node carries
// a fixed "type" discriminator from the SDK vocabulary. Documents are plain
// data: building one has no side effects and marshalling the same document
// twice produces identical bytes, since field order is fixed by the structs.
package uispec

// Node is implemented by every renderable node kind.
type Node interface {
	node()
}

// Action describes what happens when the user interacts with an element.
// Type is one of "navigate", "openModal", "api" or "refresh"; the remaining
// fields apply to the matching type only.
type Action struct {
	Type      string  `json:"type"`
	To        string  `json:"to,omitempty"`
	Method    string  `json:"method,omitempty"`
	Endpoint  string  `json:"endpoint,omitempty"`
	Confirm   string  `json:"confirm,omitempty"`
	Modal     *Modal  `json:"modal,omitempty"`
	OnSuccess *Action `json:"onSuccess,omitempty"`
}

// Navigate returns an action that routes the frontend to a path. The path
// may contain row placeholders such as {email}, filled in by the SDK.
func Navigate(to string) *Action {
	return &Action{Type: "navigate", To: to}
}

// OpenModal returns an action that opens the given modal.
func OpenModal(m *Modal) *Action {
	return &Action{Type: "openModal", Modal: m}
}

// Call returns an action that invokes a data endpoint.
func Call(method, endpoint string) *Action {
	return &Action{Type: "api", Method: method, Endpoint: endpoint}
}

// Refresh returns an action that reloads the current page data.
func Refresh() *Action {
	return &Action{Type: "refresh"}
}

// Page is the root node of every document.
type Page struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Actions     []Node `json:"actions,omitempty"`
	Children    []Node `json:"children"`
}

func (*Page) node() {}

// Card groups related content with an optional title and footer.
type Card struct {
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Subtitle  string `json:"subtitle,omitempty"`
	ClassName string `json:"className,omitempty"`
	Children  []Node `json:"children"`
	Footer    []Node `json:"footer,omitempty"`
}

func (*Card) node() {}

// TableColumn describes one column of a DataTable.
type TableColumn struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Kind     string `json:"type,omitempty"`
	Sortable bool   `json:"sortable,omitempty"`
}

// DataTable renders rows fetched from a data endpoint. Pagination and
// search flags are always serialized so the renderer never falls back to
// its own defaults.
type DataTable struct {
	Type         string        `json:"type"`
	Endpoint     string        `json:"endpoint"`
	Pagination   bool          `json:"pagination"`
	PageSize     int           `json:"pageSize,omitempty"`
	Searchable   bool          `json:"searchable"`
	Sortable     bool          `json:"sortable,omitempty"`
	Columns      []TableColumn `json:"columns"`
	RowActions   []Node        `json:"rowActions,omitempty"`
	EmptyMessage string        `json:"emptyMessage,omitempty"`
}

func (*DataTable) node() {}

// Form posts its fields to a data endpoint. Source, when set, names the
// endpoint the renderer loads current values from before editing.
type Form struct {
	Type       string  `json:"type"`
	Endpoint   string  `json:"endpoint"`
	Method     string  `json:"method"`
	Source     string  `json:"source,omitempty"`
	SubmitText string  `json:"submitText,omitempty"`
	CancelText string  `json:"cancelText,omitempty"`
	Fields     []Node  `json:"fields"`
	OnSuccess  *Action `json:"onSuccess,omitempty"`
}

func (*Form) node() {}

// TextField is a single-line form input.
type TextField struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	InputType   string `json:"inputType,omitempty"`
	Required    bool   `json:"required,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

func (*TextField) node() {}

// Checkbox is a boolean form input.
type Checkbox struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Label         string `json:"label,omitempty"`
	CheckboxLabel string `json:"checkboxLabel,omitempty"`
}

func (*Checkbox) node() {}

// Button triggers an action.
type Button struct {
	Type      string  `json:"type"`
	Label     string  `json:"label"`
	Variant   string  `json:"variant,omitempty"`
	Size      string  `json:"size,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	ClassName string  `json:"className,omitempty"`
	OnClick   *Action `json:"onClick,omitempty"`
}

func (*Button) node() {}

// Modal is a dialog opened by an openModal action.
type Modal struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Size     string `json:"size,omitempty"`
	Children []Node `json:"children"`
}

func (*Modal) node() {}

// StatItem is one tile of a StatsGrid, bound by Key to a field of the
// payload served by the grid's endpoint.
type StatItem struct {
	Label   string  `json:"label"`
	Key     string  `json:"key"`
	Icon    string  `json:"icon,omitempty"`
	OnClick *Action `json:"onClick,omitempty"`
}

// StatsGrid renders aggregate metrics fetched from a data endpoint.
type StatsGrid struct {
	Type     string     `json:"type"`
	Columns  int        `json:"columns"`
	Endpoint string     `json:"endpoint"`
	Items    []StatItem `json:"items"`
}

func (*StatsGrid) node() {}

// Text renders static content, or the record field named by Bind when the
// enclosing context has a loaded record.
type Text struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Bind    string `json:"bind,omitempty"`
	Variant string `json:"variant,omitempty"`
}

func (*Text) node() {}

// Row lays children out horizontally.
type Row struct {
	Type     string `json:"type"`
	Gap      int    `json:"gap,omitempty"`
	Children []Node `json:"children"`
}

func (*Row) node() {}

// Column lays children out vertically.
type Column struct {
	Type     string `json:"type"`
	Children []Node `json:"children"`
}

func (*Column) node() {}

// Alert renders a highlighted message.
type Alert struct {
	Type    string `json:"type"`
	Variant string `json:"variant,omitempty"`
	Message string `json:"message"`
}

func (*Alert) node() {}

// Link is a plain navigation anchor.
type Link struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

func (*Link) node() {}
