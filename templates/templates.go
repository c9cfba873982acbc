package templates

import (
	"bufio"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tdewolff/minify"

	"github.com/0xDegenDeveloper/ui-clone/utils"
)

var logger = logrus.StandardLogger().WithField("module", "templates")

var (
	//go:embed _layout vaults
	Files embed.FS
)

var templateCache = make(map[string]*template.Template)
var templateCacheMux = &sync.RWMutex{}

var (
	minifyNewlines = regexp.MustCompile(`([ \t]+)?[\r\n]+`)
	minifySpaces   = regexp.MustCompile(`([ \t])[ \t]+`)
)

// GetTemplate returns the parsed template set for files, cached unless the frontend runs in debug mode.
func GetTemplate(files ...string) *template.Template {
	name := strings.Join(files, "-")

	if utils.Config.Frontend.Debug {
		templateFiles := make([]string, len(files))
		for i := range files {
			templateFiles[i] = "templates/" + files[i]
		}
		return template.Must(template.New(name).Funcs(utils.GetTemplateFuncs()).ParseFiles(templateFiles...))
	}

	templateCacheMux.RLock()
	if tmpl := templateCache[name]; tmpl != nil {
		templateCacheMux.RUnlock()
		return tmpl
	}
	templateCacheMux.RUnlock()

	tmpl, err := parseTemplateFiles(template.New(name).Funcs(utils.GetTemplateFuncs()), readFileFS(Files), files...)
	if err != nil {
		logger.WithError(err).Errorf("error parsing templates %v", name)
		panic(err)
	}

	templateCacheMux.Lock()
	defer templateCacheMux.Unlock()
	templateCache[name] = tmpl
	return tmpl
}

func readFileFS(fsys fs.FS) func(string) (string, []byte, error) {
	return func(file string) (string, []byte, error) {
		name := path.Base(file)
		b, err := fs.ReadFile(fsys, file)
		if err != nil {
			return name, nil, err
		}

		if utils.Config.Frontend.Minify {
			m := minify.New()
			m.AddFunc("text/html", minifyTemplate)
			b, err = m.Bytes("text/html", b)
			if err != nil {
				return name, nil, fmt.Errorf("error minifying template %v: %w", file, err)
			}
		}
		return name, b, nil
	}
}

// minifyTemplate collapses newlines and repeated whitespace, template actions stay untouched.
func minifyTemplate(m *minify.M, w io.Writer, r io.Reader, _ map[string]string) error {
	rb := bufio.NewReader(r)
	for {
		line, err := rb.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = minifyNewlines.ReplaceAllString(line, "")
		line = minifySpaces.ReplaceAllString(line, " ")
		if _, errws := io.WriteString(w, line); errws != nil {
			return errws
		}
		if err == io.EOF {
			break
		}
	}
	return nil
}

func parseTemplateFiles(t *template.Template, readFile func(string) (string, []byte, error), filenames ...string) (*template.Template, error) {
	for _, filename := range filenames {
		name, b, err := readFile(filename)
		if err != nil {
			return nil, err
		}
		var tmpl *template.Template
		if name == t.Name() {
			tmpl = t
		} else {
			tmpl = t.New(name)
		}
		_, err = tmpl.Parse(string(b))
		if err != nil {
			return nil, fmt.Errorf("error parsing template %v: %w", filename, err)
		}
	}
	return t, nil
}

// GetTemplateNames lists all embedded template files.
func GetTemplateNames() []string {
	files := []string{}
	fs.WalkDir(Files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".html") {
			files = append(files, path)
		}
		return nil
	})
	return files
}
