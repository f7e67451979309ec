package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPageIsValid(t *testing.T) {
	require.NoError(t, defaultPage().Validate())
}

func TestStaggerDelay(t *testing.T) {
	s := Stagger{Base: 2000 * time.Millisecond, Step: 150 * time.Millisecond}
	assert.Equal(t, 2000*time.Millisecond, s.Delay(0))
	assert.Equal(t, 2150*time.Millisecond, s.Delay(1))
	assert.Equal(t, 2450*time.Millisecond, s.Delay(3))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	p := defaultPage()
	p.Intro.Speed = 0
	p.ProjectStagger.Step = -time.Millisecond
	p.Projects = append(p.Projects, ProjectEntry{Title: p.Projects[0].Title})
	p.Contacts[0].Target = ""
	p.Contacts[1].Target = "javascript:alert(1)"
	p.Contacts[2].Label = p.Contacts[3].Label
	p.Contacts[3].Icon = ""
	p.Credits[0].Target = "https://"
	p.Credits[1].Handle = ""

	err := p.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"intro: speed must be positive",
		"projects: stagger step must not be negative",
		`duplicate title "ENS Resolver Bot"`,
		`contact "ENS Profile": empty target URL`,
		`contact "Message via ENS": target "javascript:alert(1)" is not an http(s) URL`,
		`duplicate label "GitHub"`,
		`contact "GitHub": empty icon`,
		"has no host",
		"credit 1: empty handle",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestItemIDs(t *testing.T) {
	assert.Equal(t, "project-2", projectID(2))
	assert.Equal(t, "contact-0", contactID(0))
}
