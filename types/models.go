package types

// PageData is a struct to hold web page data
type PageData struct {
	Active           string
	Meta             *Meta
	Data             interface{}
	Version          string
	BuildTime        string
	Year             int
	ExplorerTitle    string
	ExplorerSubtitle string
	Lang             string
	Debug            bool
	MainMenuItems    []MainMenuItem
}

type MainMenuItem struct {
	Label    string
	Path     string
	Icon     string
	IsActive bool
}

// Meta is a struct to hold metadata about the page
type Meta struct {
	Title       string
	Description string
	Domain      string
	Path        string
	Templates   string
}

type Empty struct{}
