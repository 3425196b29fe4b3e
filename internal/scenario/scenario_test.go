package scenario_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	gc "gopkg.in/check.v1"

	"github.com/v4rm4n/trycatch/internal/fault"
	"github.com/v4rm4n/trycatch/internal/scenario"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type scenarioSuite struct{}

var _ = gc.Suite(&scenarioSuite{})

func (*scenarioSuite) TestDefault(c *gc.C) {
	s := scenario.Default()
	c.Assert(s.Names, gc.DeepEquals, []string{"foo"})
	c.Assert(s.Divisions, gc.HasLen, 2)
	c.Assert(s.Divisions[0].Dividend.String(), gc.Equals, "10")
	c.Assert(s.Divisions[0].Divisor.String(), gc.Equals, "2")
	c.Assert(s.Divisions[1].Divisor.IsZero(), gc.Equals, true)
	c.Assert(s.Handlers.Names.Kind, gc.Equals, fault.NameError)
	c.Assert(s.Handlers.Divisions.Kind, gc.Equals, fault.ArithmeticError)
}

func (*scenarioSuite) TestDecodeHandlers(c *gc.C) {
	s, err := scenario.Decode(strings.NewReader(`
divisions:
  - {dividend: 1, divisor: 0}
handlers:
  divisions: OverflowError
`))
	c.Assert(err, gc.IsNil)
	c.Assert(s.Handlers.Divisions.Kind, gc.Equals, fault.OverflowError)
	c.Assert(s.Handlers.Names.Kind, gc.IsNil)
	c.Assert(s.Handlers.Names.Or(fault.NameError), gc.Equals, fault.NameError)
	c.Assert(s.Handlers.Divisions.Or(fault.ArithmeticError), gc.Equals, fault.OverflowError)
}

func (*scenarioSuite) TestDecodeRejectsUnknownHandlerKind(c *gc.C) {
	_, err := scenario.Decode(strings.NewReader("handlers:\n  names: KeyError\n"))
	c.Assert(err, gc.ErrorMatches, `parse: (?s).*unknown fault kind "KeyError".*`)
}

func (*scenarioSuite) TestDecodeKeepsIntFloatDistinction(c *gc.C) {
	s, err := scenario.Decode(strings.NewReader(`
names: [foo, bar_2]
divisions:
  - {dividend: 7, divisor: 2}
  - {dividend: 7.0, divisor: 2}
`))
	c.Assert(err, gc.IsNil)
	c.Assert(s.Names, gc.DeepEquals, []string{"foo", "bar_2"})
	c.Assert(s.Divisions[0].Dividend.IsFloat(), gc.Equals, false)
	c.Assert(s.Divisions[1].Dividend.IsFloat(), gc.Equals, true)
}

func (*scenarioSuite) TestDecodeRejectsUnknownFields(c *gc.C) {
	_, err := scenario.Decode(strings.NewReader("names: [foo]\nretries: 3\n"))
	c.Assert(err, gc.ErrorMatches, `parse: (?s).*field retries not found.*`)
}

func (*scenarioSuite) TestDecodeRejectsNonNumbers(c *gc.C) {
	_, err := scenario.Decode(strings.NewReader("divisions:\n  - {dividend: ten, divisor: 2}\n"))
	c.Assert(err, gc.ErrorMatches, `parse: (?s).*operand "ten" is not a number.*`)
}

func (*scenarioSuite) TestDecodeEmpty(c *gc.C) {
	_, err := scenario.Decode(strings.NewReader(""))
	c.Assert(err, gc.ErrorMatches, "document is empty")
}

func (*scenarioSuite) TestValidationCollectsIssues(c *gc.C) {
	_, err := scenario.Decode(strings.NewReader(`
names: ["1abc", ""]
divisions:
  - {dividend: 1}
`))
	verr, ok := err.(*scenario.ValidationError)
	c.Assert(ok, gc.Equals, true)
	c.Assert(verr.Issues, gc.DeepEquals, []string{
		`names[0]: "1abc" is not an identifier`,
		`names[1]: "" is not an identifier`,
		"divisions[0]: missing divisor",
	})
}

func (*scenarioSuite) TestLoad(c *gc.C) {
	path := filepath.Join(c.MkDir(), "scenario.yml")
	err := os.WriteFile(path, []byte("names: [x]\ndivisions:\n  - {dividend: 1, divisor: 0}\n"), 0644)
	c.Assert(err, gc.IsNil)

	s, err := scenario.Load(path)
	c.Assert(err, gc.IsNil)
	c.Assert(s.Names, gc.DeepEquals, []string{"x"})
	c.Assert(s.Divisions[0].Divisor.IsZero(), gc.Equals, true)
}

func (*scenarioSuite) TestLoadMissingFile(c *gc.C) {
	_, err := scenario.Load(filepath.Join(c.MkDir(), "nope.yml"))
	c.Assert(err, gc.ErrorMatches, "scenario: open .*nope.yml: .*")

	_, err = scenario.Load("")
	c.Assert(err, gc.ErrorMatches, "scenario: empty path")
}
