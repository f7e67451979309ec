package main

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type ProjectEntry struct {
	Title       string
	Description string
	Tags        []string
}

type ContactMethod struct {
	Icon   string
	Label  string
	Value  string
	Target string
}

// Credit is a footer link, e.g. "Built by @clonkbot".
type Credit struct {
	Prefix string
	Handle string
	Target string
}

// Stagger spaces out the entrance of the items in one list.
type Stagger struct {
	Base time.Duration
	Step time.Duration
}

// Delay returns the entrance delay of the i-th item.
func (s Stagger) Delay(i int) time.Duration {
	return s.Base + time.Duration(i)*s.Step
}

// Page is everything the portfolio renders. It never changes after startup.
type Page struct {
	Badge          string
	Name           string
	Intro          RevealInput
	Projects       []ProjectEntry
	ProjectStagger Stagger
	ENSBlurb       string
	Contacts       []ContactMethod
	ContactStagger Stagger
	Status         string
	LastUpdated    string
	Credits        []Credit
}

// Validate reports every malformed entry at once.
func (p Page) Validate() error {
	var errs []error

	if p.Intro.Speed <= 0 {
		errs = append(errs, fmt.Errorf("intro: speed must be positive, got %s", p.Intro.Speed))
	}
	if p.Intro.Delay < 0 {
		errs = append(errs, fmt.Errorf("intro: delay must not be negative, got %s", p.Intro.Delay))
	}
	errs = append(errs, p.ProjectStagger.validate("projects")...)
	errs = append(errs, p.ContactStagger.validate("contacts")...)

	titles := make(map[string]bool, len(p.Projects))
	for i, project := range p.Projects {
		if project.Title == "" {
			errs = append(errs, fmt.Errorf("project %d: empty title", i))
		} else if titles[project.Title] {
			errs = append(errs, fmt.Errorf("project %d: duplicate title %q", i, project.Title))
		}
		titles[project.Title] = true
	}

	labels := make(map[string]bool, len(p.Contacts))
	for i, contact := range p.Contacts {
		if contact.Label == "" {
			errs = append(errs, fmt.Errorf("contact %d: empty label", i))
		} else if labels[contact.Label] {
			errs = append(errs, fmt.Errorf("contact %d: duplicate label %q", i, contact.Label))
		}
		labels[contact.Label] = true
		if contact.Icon == "" {
			errs = append(errs, fmt.Errorf("contact %q: empty icon", contact.Label))
		}
		if err := validateTarget(contact.Target); err != nil {
			errs = append(errs, fmt.Errorf("contact %q: %w", contact.Label, err))
		}
	}

	for i, credit := range p.Credits {
		if credit.Handle == "" {
			errs = append(errs, fmt.Errorf("credit %d: empty handle", i))
		}
		if err := validateTarget(credit.Target); err != nil {
			errs = append(errs, fmt.Errorf("credit %d (%s): %w", i, credit.Handle, err))
		}
	}

	return errors.Join(errs...)
}

func (s Stagger) validate(list string) []error {
	var errs []error
	if s.Base < 0 {
		errs = append(errs, fmt.Errorf("%s: stagger base must not be negative", list))
	}
	if s.Step < 0 {
		errs = append(errs, fmt.Errorf("%s: stagger step must not be negative", list))
	}
	return errs
}

func validateTarget(target string) error {
	if target == "" {
		return errors.New("empty target URL")
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("parse target: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("target %q is not an http(s) URL", target)
	}
	if u.Host == "" {
		return fmt.Errorf("target %q has no host", target)
	}
	return nil
}

func projectID(i int) string { return fmt.Sprintf("project-%d", i) }
func contactID(i int) string { return fmt.Sprintf("contact-%d", i) }
