package firecrawl

// Built-in description templates, one per operation. A non-empty custom
// description configured on the tool instance replaces the template verbatim.

const scrapeDescription = `Scrape a single web page and return its content.

Use this when you need the content of one specific URL. The page is fetched
with a real browser, so JavaScript-rendered content is included.

Example input:
{"url": "https://example.com/pricing", "formats": ["markdown"], "onlyMainContent": true}

Returns a JSON object whose "data" field holds the requested formats, e.g.
data.markdown for the page content and data.metadata for title, description,
language, and the final URL after redirects. Prefer "markdown" unless raw
HTML is specifically required; use "links" to list outgoing links and
"screenshot" for a rendered image URL.`

const mapDescription = `Map a website and return the URLs it contains.

Use this to discover pages before scraping, or to answer "what pages does
this site have". Mapping is fast and cheap compared to a crawl; it does not
fetch page content.

Example input:
{"url": "https://example.com", "search": "blog", "limit": 100}

Returns a JSON object whose "links" field is the list of discovered URLs,
ordered by relevance when a search term is given. Set "sitemap" to "only" to
read just the sitemap, or "skip" to ignore it and rely on link discovery.`

const searchDescription = `Search the web and optionally scrape the results.

Use this when you do not know which site holds the answer. Results can be
scraped in the same call by setting scrapeOptions, which saves a follow-up
scrape per result.

Example input:
{"query": "firecrawl golang sdk", "limit": 5, "scrapeOptions": {"formats": ["markdown"]}}

Returns a JSON object whose "data" field lists results with url, title, and
description; when scrapeOptions is set each result also carries the scraped
content in the requested formats.`

const crawlDescription = `Crawl a website starting from a URL and scrape every reachable page.

Use this for whole-site extraction jobs. Crawling is asynchronous: the call
returns immediately with a job id, not with page content. Poll the job by
other means to collect results; this tool does not wait for completion.

Example input:
{"url": "https://example.com/blog", "limit": 20, "scrapeOptions": {"formats": ["markdown"]}}

Returns a JSON object with the job "id" and a status "url". Keep "limit"
small unless the whole site is genuinely needed; every crawled page counts
against the API quota.`
