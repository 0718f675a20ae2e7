// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	ArgfileNotFoundId Id = iota + 1
	ArgfileParseErrorId
	UnsupportedFormatId
	CommandNotFoundId
	ArgumentsInvalidId
	ConfigLoadFailedId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is the Markdown body of an issue.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	// Issue is a catalog entry with Markdown guidance.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

// Id returns the issue identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// DocLinks returns a copy of the documentation links.
func (i *Issue) DocLinks() []HttpLink { return slices.Clone(i.docLinks) }

// Render renders the issue for a terminal. stylePath is a glamour style
// name ("auto", "dark", "light", "notty") or a path to a style file.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	argfileNotFoundIssue = &Issue{
		id: ArgfileNotFoundId,
		mdMsg: `
# No definitions file found!

argbind needs a definitions file describing your commands.

## Lookup order
1. The ` + "`--argfile`" + ` flag
2. The ` + "`argfile`" + ` field of your config file
3. ` + "`argbind.cue`, `argbind.toml`, `argbind.yaml` or `argbind.yml`" + ` in the current directory

## Things you can try
- Point at an existing file:
~~~
$ argbind run --argfile ./commands.cue -- copy a.txt
~~~
- Create a minimal file:
~~~cue
commands: [{
	name: "greet"
	arguments: {name: "who", arity: "exactly-one"}
}]
~~~`,
	}

	argfileParseErrorIssue = &Issue{
		id: ArgfileParseErrorId,
		mdMsg: `
# Failed to parse the definitions file!

The file has syntax errors or does not match the schema.

## Common issues
- Unknown field names (fields are closed)
- An ` + "`arity`" + ` outside zero, exactly-one, zero-or-one, zero-or-more, one-or-more
- A list ` + "`type`" + ` such as ` + "`[]int`" + ` paired with a single-token arity
- A ` + "`default`" + ` that does not convert to the declared type

## Things you can try
~~~
$ argbind validate ./commands.cue
~~~`,
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unsupported definitions file format!

Definitions files are read by extension: ` + "`.cue`, `.toml`, `.yaml`, `.yml`" + `.
Rename the file or convert it to one of these formats.`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The command is not declared in the definitions file.

## Things you can try
- List the declared commands:
~~~
$ argbind validate
~~~
- Check for typos; completion lists the declared names:
~~~
$ argbind suggest <TAB>
~~~`,
	}

	argumentsInvalidIssue = &Issue{
		id: ArgumentsInvalidId,
		mdMsg: `
# Invalid arguments!

One or more tokens did not satisfy the command's argument contract
(count, allowed values, path rules or type).

## Things you can try
- Ask for the accepted values of a slot:
~~~
$ argbind suggest <command> [--option NAME] [prefix]
~~~
- Rerun with ` + "`--verbose`" + ` to see every failed check.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The config file exists but could not be read or does not match the schema.

## Things you can try
- Print the effective configuration:
~~~
$ argbind config show
~~~
- Write a fresh default file:
~~~
$ argbind config init
~~~`,
	}

	issues = map[Id]*Issue{
		argfileNotFoundIssue.Id():   argfileNotFoundIssue,
		argfileParseErrorIssue.Id(): argfileParseErrorIssue,
		unsupportedFormatIssue.Id(): unsupportedFormatIssue,
		commandNotFoundIssue.Id():   commandNotFoundIssue,
		argumentsInvalidIssue.Id():  argumentsInvalidIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id - b.id) })
	return all
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
