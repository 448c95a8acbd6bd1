package firecrawl

import "encoding/json"

// scrapeOptionProps is the shared scrape-options property block. It appears
// at the top level of the scrape schema and nested under "scrapeOptions" in
// the search and crawl schemas; defining it once keeps the three in sync.
const scrapeOptionProps = `
		"formats": {
			"type": "array",
			"items": {
				"type": "string",
				"enum": ["markdown", "html", "rawHtml", "links", "screenshot"]
			},
			"description": "Output formats to return for each page. Defaults to markdown."
		},
		"onlyMainContent": {
			"type": "boolean",
			"description": "Strip navigation, headers, footers, and other boilerplate"
		},
		"includeTags": {
			"type": "array",
			"items": {"type": "string"},
			"description": "HTML tags, classes, or ids to include in the output"
		},
		"excludeTags": {
			"type": "array",
			"items": {"type": "string"},
			"description": "HTML tags, classes, or ids to exclude from the output"
		},
		"waitFor": {
			"type": "integer",
			"description": "Milliseconds to wait for the page to settle before extraction"
		},
		"mobile": {
			"type": "boolean",
			"description": "Emulate a mobile device when rendering the page"
		}`

// scrapeOptionsObject wraps the shared block as the nested "scrapeOptions"
// property used by search and crawl.
const scrapeOptionsObject = `
		"scrapeOptions": {
			"type": "object",
			"description": "Options applied when scraping each result page",
			"properties": {` + scrapeOptionProps + `
			}
		}`

func scrapeSchema() json.RawMessage {
	return json.RawMessage(`{
	"type": "object",
	"properties": {
		"url": {
			"type": "string",
			"description": "The URL of the page to scrape"
		},` + scrapeOptionProps + `
	},
	"required": ["url"]
}`)
}

func mapSchema() json.RawMessage {
	return json.RawMessage(`{
	"type": "object",
	"properties": {
		"url": {
			"type": "string",
			"description": "The website to map"
		},
		"search": {
			"type": "string",
			"description": "Only return URLs relevant to this search term"
		},
		"sitemap": {
			"type": "string",
			"enum": ["include", "skip", "only"],
			"description": "How to treat the site's sitemap during discovery"
		},
		"includeSubdomains": {
			"type": "boolean",
			"description": "Also return URLs on subdomains of the site"
		},
		"limit": {
			"type": "integer",
			"description": "Maximum number of links to return"
		}
	},
	"required": ["url"]
}`)
}

func searchSchema() json.RawMessage {
	return json.RawMessage(`{
	"type": "object",
	"properties": {
		"query": {
			"type": "string",
			"description": "The search query"
		},
		"limit": {
			"type": "integer",
			"description": "Maximum number of results to return"
		},
		"sources": {
			"type": "array",
			"items": {
				"type": "string",
				"enum": ["web", "news", "images"]
			},
			"description": "Which result sources to search"
		},` + scrapeOptionsObject + `
	},
	"required": ["query"]
}`)
}

func crawlSchema() json.RawMessage {
	return json.RawMessage(`{
	"type": "object",
	"properties": {
		"url": {
			"type": "string",
			"description": "The URL to start crawling from"
		},
		"limit": {
			"type": "integer",
			"description": "Maximum number of pages to crawl"
		},
		"maxDiscoveryDepth": {
			"type": "integer",
			"description": "Maximum link depth to follow from the starting URL"
		},
		"includePaths": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Only crawl URLs matching these path patterns"
		},
		"excludePaths": {
			"type": "array",
			"items": {"type": "string"},
			"description": "Skip URLs matching these path patterns"
		},
		"allowExternalLinks": {
			"type": "boolean",
			"description": "Follow links that leave the starting domain"
		},` + scrapeOptionsObject + `
	},
	"required": ["url"]
}`)
}
