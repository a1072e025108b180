// Package xkblayouts reads the XKB rules registry (evdev.xml) to give
// layouts, models and options human readable names.
package xkblayouts

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

func ParseLayouts(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

func Decode(r io.Reader) (*XkbConfigRegistry, error) {
	registry := &XkbConfigRegistry{}
	err := xml.NewDecoder(r).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

func (r *XkbConfigRegistry) GetLayoutPrettyName(layout, variant string) string {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layout {
			continue
		}
		if variant == "" {
			return l.ConfigItem.Description
		}

		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description
			}
		}
	}

	return ""
}

func (r *XkbConfigRegistry) GetModelPrettyName(model string) string {
	for _, m := range r.ModelList.Model {
		if m.ConfigItem.Name == model {
			return m.ConfigItem.Description
		}
	}

	return ""
}

func (r *XkbConfigRegistry) GetOptionPrettyName(option string) string {
	for _, g := range r.OptionList.Group {
		for _, o := range g.Option {
			if o.ConfigItem.Name == option {
				return o.ConfigItem.Description
			}
		}
	}

	return ""
}

// Describe names a layout for display. It works on a nil registry and falls
// back to the XKB codes when the registry has no entry.
func (r *XkbConfigRegistry) Describe(layout, variant string) string {
	if r != nil {
		if name := r.GetLayoutPrettyName(layout, variant); name != "" {
			return name
		}
	}

	if variant == "" {
		return layout
	}
	return fmt.Sprintf("%s(%s)", layout, variant)
}

// DescribeModel is Describe for keyboard models.
func (r *XkbConfigRegistry) DescribeModel(model string) string {
	if r != nil {
		if name := r.GetModelPrettyName(model); name != "" {
			return name
		}
	}
	return model
}

// DescribeOption is Describe for XKB options.
func (r *XkbConfigRegistry) DescribeOption(option string) string {
	if r != nil {
		if name := r.GetOptionPrettyName(option); name != "" {
			return name
		}
	}
	return option
}
