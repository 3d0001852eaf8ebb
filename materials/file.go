package materials

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// YAMLFile loads materials from a YAML document of the form
//
//	materials:
//	  - name: lithium niobate
//	    formula: LiNbO3
//	    density: 4.65
type YAMLFile struct {
	Path string
}

func (f YAMLFile) Name() string { return "yaml:" + f.Path }

func (f YAMLFile) Load(ctx context.Context) ([]Material, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Materials []Material `yaml:"materials"`
	}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", f.Path, err)
	}
	return doc.Materials, nil
}

type materialsXMLFile struct {
	Materials []Material `xml:"material"`
}

// XMLFiles loads materials from one XML file, or from every .xml file in
// a folder, each of the form
//
//	<materials>
//	  <material name="lithium niobate" formula="LiNbO3" density="4.65"/>
//	</materials>
//
// Files are read in name order so later files override earlier ones.
type XMLFiles struct {
	Path string
}

func (f XMLFiles) Name() string { return "xml:" + f.Path }

func (f XMLFiles) Load(ctx context.Context) ([]Material, error) {
	files := []string{f.Path}
	if st, err := os.Stat(f.Path); err != nil {
		return nil, err
	} else if st.IsDir() {
		files, err = filepath.Glob(filepath.Join(f.Path, "*.xml"))
		if err != nil {
			return nil, err
		}
		sort.Strings(files)
	}

	var all []Material
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ms, err := readXMLFile(file)
		if err != nil {
			return nil, err
		}
		all = append(all, ms...)
	}
	return all, nil
}

func readXMLFile(path string) ([]Material, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var doc materialsXMLFile
	if err = xml.NewDecoder(fh).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return doc.Materials, nil
}
