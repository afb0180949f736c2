// Package catalog manages the durable list of known food items stored in
// custom_foods.csv. Every lookup is a linear scan of the file.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/foodinme/internal/fileutil"
	"github.com/theirongolddev/foodinme/internal/model"

	"go.uber.org/zap"
)

// FileName is the catalog file, relative to the data root.
const FileName = "custom_foods.csv"

// MaxLineBytes caps a single catalog line.
const MaxLineBytes = 16 * 1024 * 1024

// Catalog is the food item store. The file is the only state.
type Catalog struct {
	files *fileutil.Store
	log   *zap.Logger
}

// New returns a Catalog over files. A nil logger discards output.
func New(files *fileutil.Store, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{files: files, log: log.Named("catalog")}
}

// Path returns the absolute catalog path.
func (c *Catalog) Path() string {
	return c.files.Path(FileName)
}

// EnsureExists creates the data root and, if the catalog is absent, writes
// a catalog holding only the header line.
func (c *Catalog) EnsureExists() error {
	if err := fileutil.EnsureDir(c.files.Root); err != nil {
		return err
	}
	if fileutil.Exists(c.Path()) {
		return nil
	}
	if err := os.WriteFile(c.Path(), []byte(model.CatalogHeader+"\n"), 0o644); err != nil {
		return model.NewError(model.KindIO, "creating "+FileName, err)
	}
	c.log.Debug("created catalog", zap.String("path", c.Path()))
	return nil
}

// Exists reports whether an entry named name is present. A missing catalog
// holds nothing.
func (c *Catalog) Exists(name string) (bool, error) {
	found := false
	err := c.scan(func(line string) bool {
		if keyOf(line) == name {
			found = true
			return false
		}
		return true
	})
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return found, err
}

// Get returns the entry named name. ok is false when no entry matches or
// the catalog is missing.
func (c *Catalog) Get(name string) (item model.FoodItem, ok bool, err error) {
	var parseErr error
	scanErr := c.scan(func(line string) bool {
		if keyOf(line) != name {
			return true
		}
		item, parseErr = model.ParseFoodItem(line, model.FieldDelimiter)
		ok = parseErr == nil
		return false
	})
	if errors.Is(scanErr, os.ErrNotExist) {
		return model.FoodItem{}, false, nil
	}
	if scanErr != nil {
		return model.FoodItem{}, false, scanErr
	}
	if parseErr != nil {
		c.log.Warn("unparsable catalog entry", zap.String("name", name), zap.Error(parseErr))
		return model.FoodItem{}, false, nil
	}
	return item, ok, nil
}

// List returns every parsable entry in file order.
func (c *Catalog) List() ([]model.FoodItem, error) {
	var items []model.FoodItem
	err := c.scan(func(line string) bool {
		if strings.TrimSpace(line) == "" {
			return true
		}
		item, err := model.ParseFoodItem(line, model.FieldDelimiter)
		if err != nil {
			c.log.Warn("skipping unparsable catalog line", zap.String("line", line))
			return true
		}
		items = append(items, item)
		return true
	})
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return items, err
}

// Add appends item to the catalog, creating the file if needed. It does not
// check for an existing entry; TryAdd does.
func (c *Catalog) Add(item model.FoodItem) error {
	if err := c.EnsureExists(); err != nil {
		return err
	}

	f, err := os.OpenFile(c.Path(), os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return model.NewError(model.KindIO, "opening "+FileName, err)
	}
	defer f.Close()

	if _, err := f.WriteString(item.CSV() + "\n"); err != nil {
		return model.NewError(model.KindIO, "appending to "+FileName, err)
	}
	c.log.Debug("added food item", zap.String("name", item.Name))
	return nil
}

// Replace rewrites the entry whose name matches item's through a temp file,
// copying every other line byte for byte. When no entry matches the catalog
// is left untouched.
func (c *Catalog) Replace(item model.FoodItem) error {
	if !fileutil.Exists(c.Path()) {
		return model.NewError(model.KindMissingFile,
			`List of food items cannot be found. Add food items with the "add-food" command.`, nil)
	}

	replaced, err := c.writeReplacement(item)
	if err != nil {
		_ = os.Remove(c.files.Path(fileutil.TempName))
		return err
	}
	if !replaced {
		_ = os.Remove(c.files.Path(fileutil.TempName))
		return model.NewError(model.KindNotFound,
			fmt.Sprintf("Food item %s was not found and could not be replaced.", item.Name), nil)
	}

	if err := c.files.Replace(FileName, fileutil.TempName); err != nil {
		return err
	}
	c.log.Debug("replaced food item", zap.String("name", item.Name))
	return nil
}

func (c *Catalog) writeReplacement(item model.FoodItem) (bool, error) {
	in, err := os.Open(c.Path())
	if err != nil {
		return false, model.NewError(model.KindIO, "opening "+FileName, err)
	}
	defer in.Close()

	out, err := os.Create(c.files.Path(fileutil.TempName))
	if err != nil {
		return false, model.NewError(model.KindIO, "creating "+fileutil.TempName, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	r := bufio.NewReader(in)
	replaced := false
	first := true
	for {
		raw, readErr := r.ReadString('\n')
		if raw != "" {
			line := raw
			trimmed := strings.TrimRight(raw, "\r\n")
			if !(first && trimmed == model.CatalogHeader) && keyOf(trimmed) == item.Name {
				line = item.CSV() + "\n"
				replaced = true
			}
			if _, err := w.WriteString(line); err != nil {
				return false, model.NewError(model.KindIO, "writing "+fileutil.TempName, err)
			}
		}
		first = false
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return false, model.NewError(model.KindIO, "reading "+FileName, readErr)
		}
	}

	if err := w.Flush(); err != nil {
		return false, model.NewError(model.KindIO, "writing "+fileutil.TempName, err)
	}
	if err := out.Close(); err != nil {
		return false, model.NewError(model.KindIO, "closing "+fileutil.TempName, err)
	}
	return replaced, nil
}

// TryAdd parses text as "name-cal-carbs-fats-proteins" and stores it. An
// existing entry yields a KindPreexisting error unless overwrite is set, in
// which case the entry is replaced. Names must be non-empty and free of the
// field delimiter.
func (c *Catalog) TryAdd(text string, overwrite bool) (model.FoodItem, error) {
	item, err := model.ParseFoodItem(text, model.CommandDelimiter)
	if err == nil {
		err = validName(item.Name)
	}
	if err != nil {
		return model.FoodItem{}, model.NewError(model.KindParse,
			fmt.Sprintf(`Failed to parse "%s" as a food item. Type "help add-food" to learn usage.`, text), err)
	}

	exists, err := c.Exists(item.Name)
	if err != nil {
		return item, err
	}
	if exists {
		if !overwrite {
			return item, model.NewError(model.KindPreexisting, "", nil)
		}
		return item, c.Replace(item)
	}
	return item, c.Add(item)
}

// scan calls fn with every entry line (leading header excluded, terminator
// stripped) until fn returns false. A missing catalog yields os.ErrNotExist.
func (c *Catalog) scan(fn func(line string) bool) error {
	f, err := os.Open(c.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return model.NewError(model.KindIO, "opening "+FileName, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first {
			first = false
			if line == model.CatalogHeader {
				continue
			}
		}
		if !fn(line) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return model.NewError(model.KindIO, "reading "+FileName, err)
	}
	return nil
}

func validName(name string) error {
	switch {
	case name == "":
		return errors.New("food name is empty")
	case strings.Contains(name, model.FieldDelimiter):
		return fmt.Errorf("food name %q contains %q", name, model.FieldDelimiter)
	}
	return nil
}

func keyOf(line string) string {
	name, _, _ := strings.Cut(line, model.FieldDelimiter)
	return name
}
