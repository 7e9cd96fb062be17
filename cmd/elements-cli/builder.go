package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-elements/pkg/document"
	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
)

const maxBuilderDepth = 8

// prompter is the question surface the builder needs; surveyPrompter backs
// it with terminal prompts.
type prompter interface {
	Input(message, def string, validate func(string) error) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var answer string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			value, _ := ans.(string)
			return validate(value)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...)
	return answer, err
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer)
	return answer, err
}

type builderResult struct {
	Document string
	Preview  string
}

// runBuilder asks for a template tree and returns it as a YAML document
// that -input accepts, together with its rendered markup.
func runBuilder(p prompter) (builderResult, error) {
	tpl, err := buildTemplate(p, 0)
	if err != nil {
		return builderResult{}, err
	}

	doc := document.Document{Title: tpl.Tag, Templates: []model.Template{tpl}}
	preview, err := doc.RenderHTML(materialize.New())
	if err != nil {
		return builderResult{}, err
	}
	encoded, err := yaml.Marshal(doc)
	if err != nil {
		return builderResult{}, fmt.Errorf("encode document: %w", err)
	}
	return builderResult{Document: string(encoded), Preview: preview}, nil
}

func buildTemplate(p prompter, depth int) (model.Template, error) {
	indent := strings.Repeat("  ", depth)
	var tpl model.Template

	tag, err := p.Input(indent+"Tag", "div", validateTag)
	if err != nil {
		return tpl, err
	}
	tpl.Tag = strings.ToLower(strings.TrimSpace(tag))

	if tpl.ID, err = p.Input(indent+"Id (optional)", "", nil); err != nil {
		return tpl, err
	}
	classes, err := p.Input(indent+"Classes (space separated, optional)", "", nil)
	if err != nil {
		return tpl, err
	}
	tpl.ClassList = strings.Fields(classes)
	if tpl.Text, err = p.Input(indent+"Text (optional)", "", nil); err != nil {
		return tpl, err
	}

	if tpl.Attributes, err = askPairs(p, indent, "attribute"); err != nil {
		return tpl, err
	}
	if tpl.Styles, err = askPairs(p, indent, "style"); err != nil {
		return tpl, err
	}

	for depth < maxBuilderDepth {
		more, err := p.Confirm(indent+"Add a child element?", false)
		if err != nil {
			return tpl, err
		}
		if !more {
			break
		}
		child, err := buildTemplate(p, depth+1)
		if err != nil {
			return tpl, err
		}
		tpl.Children = append(tpl.Children, child)
	}
	return tpl, nil
}

func askPairs(p prompter, indent, kind string) (map[string]string, error) {
	var pairs map[string]string
	for {
		more, err := p.Confirm(fmt.Sprintf("%sAdd a%s %s?", indent, article(kind), kind), false)
		if err != nil {
			return nil, err
		}
		if !more {
			return pairs, nil
		}
		name, err := p.Input(indent+"  Name", "", required)
		if err != nil {
			return nil, err
		}
		value, err := p.Input(indent+"  Value", "", nil)
		if err != nil {
			return nil, err
		}
		if pairs == nil {
			pairs = make(map[string]string)
		}
		pairs[strings.TrimSpace(name)] = value
	}
}

func article(word string) string {
	if strings.ContainsRune("aeiou", rune(word[0])) {
		return "n"
	}
	return ""
}

func validateTag(value string) error {
	if !dom.IsKnownElement(value) {
		return fmt.Errorf("%q is not an HTML element", strings.TrimSpace(value))
	}
	return nil
}

func required(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}
