// Package firecrawl exposes the Firecrawl v2 API as agent-callable tools.
//
// Each tool instance covers exactly one operation (scrape, map, search, or
// crawl). The parameter schemas and description templates are static data;
// the only runtime behaviour is the authenticated POST to the remote API and
// the I/O records around it.
package firecrawl

import "encoding/json"

// Operation is one of the fixed remote API actions. It doubles as the final
// path segment of the outbound request.
type Operation string

const (
	OpScrape Operation = "scrape"
	OpMap    Operation = "map"
	OpSearch Operation = "search"
	OpCrawl  Operation = "crawl"
)

// toolPrefix is prepended to every tool name so the names never collide with
// other toolkits registered on the same agent.
const toolPrefix = "firecrawl"

// ToolName returns the registered tool name for op.
func ToolName(op Operation) string { return toolPrefix + "_" + string(op) }

// Operations returns the supported operations in presentation order.
func Operations() []Operation {
	return []Operation{OpScrape, OpMap, OpSearch, OpCrawl}
}

// descriptor is the static definition of one operation's tool. Construction
// is a table lookup; an operation missing from the table is a configuration
// error.
type descriptor struct {
	description string
	schema      json.RawMessage
}

var descriptors = map[Operation]descriptor{
	OpScrape: {description: scrapeDescription, schema: scrapeSchema()},
	OpMap:    {description: mapDescription, schema: mapSchema()},
	OpSearch: {description: searchDescription, schema: searchSchema()},
	OpCrawl:  {description: crawlDescription, schema: crawlSchema()},
}
