package dashboard

import "html/template"

// pageTemplate is the self-contained dashboard page. All chart and table
// fragments arrive pre-rendered and pre-escaped as template.HTML.
var pageTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>ORGAN-V Analytics Dashboard</title>
<style>
  :root { --primary: #0d47a1; --bg: #fafafa; --card: #fff; --border: #e0e0e0;
          --text: #333; --muted: #999; --up: #2e7d32; --down: #c62828; }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
         background: var(--bg); color: var(--text); line-height: 1.6; padding: 2rem; max-width: 960px; margin: 0 auto; }
  h1 { color: var(--primary); margin-bottom: 0.25rem; }
  .subtitle { color: var(--muted); margin-bottom: 2rem; font-size: 0.9rem; }
  .cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1rem; margin-bottom: 2rem; }
  .card { background: var(--card); border: 1px solid var(--border); border-radius: 8px; padding: 1.25rem; }
  .card h3 { font-size: 0.8rem; text-transform: uppercase; color: var(--muted); margin-bottom: 0.5rem; }
  .card .value { font-size: 2rem; font-weight: 700; color: var(--primary); }
  .trend { font-size: 0.85rem; margin-left: 0.5rem; }
  .trend.up { color: var(--up); }
  .trend.down { color: var(--down); }
  .trend.neutral { color: var(--muted); }
  section { margin-bottom: 2rem; }
  section h2 { color: var(--primary); margin-bottom: 1rem; font-size: 1.2rem; }
  table { width: 100%; border-collapse: collapse; background: var(--card); border: 1px solid var(--border); border-radius: 8px; overflow: hidden; }
  th, td { padding: 0.6rem 1rem; text-align: left; border-bottom: 1px solid var(--border); }
  th { background: #f5f5f5; font-size: 0.8rem; text-transform: uppercase; color: var(--muted); }
  .num { text-align: right; font-variant-numeric: tabular-nums; }
  .empty-notice { color: var(--muted); font-style: italic; padding: 1rem; background: var(--card); border: 1px solid var(--border); border-radius: 8px; text-align: center; }
  .alerts li { list-style: none; padding: 0.5rem 1rem; margin-bottom: 0.5rem; border-radius: 4px; }
  .alert-critical { background: #ffebee; border-left: 4px solid #c62828; }
  .alert-warning { background: #fff3e0; border-left: 4px solid #ff9800; }
  .alert-info { background: #e3f2fd; border-left: 4px solid #2196f3; }
  footer { margin-top: 3rem; padding-top: 1rem; border-top: 1px solid var(--border); color: var(--muted); font-size: 0.8rem; }
</style>
</head>
<body>
<h1>ORGAN-V Analytics Dashboard</h1>
<p class="subtitle">Period: {{.PeriodStart}} to {{.PeriodEnd}} | Generated: {{.GeneratedDate}}</p>

{{if not .HasData}}<div class="empty-notice" style="margin-bottom:2rem">No analytics data collected yet. Configure GoatCounter and GitHub tokens to start tracking.</div>{{end}}

<div class="cards">
  <div class="card">
    <h3>Page Views</h3>
    <div class="value">{{.PageViews}}</div>
    {{.ViewsTrend}}
  </div>
  <div class="card">
    <h3>Unique Visitors</h3>
    <div class="value">{{.Visitors}}</div>
    {{.VisitorsTrend}}
  </div>
  <div class="card">
    <h3>Total Commits</h3>
    <div class="value">{{.Commits}}</div>
  </div>
  <div class="card">
    <h3>Pull Requests</h3>
    <div class="value">{{.PRs}}</div>
  </div>
</div>

<section>
  <h2>Pages</h2>
  {{.PagesTable}}
</section>

<section>
  <h2>Commits by Organ</h2>
  {{.OrganChart}}
</section>

<section>
  <h2>Alerts</h2>
  {{.Alerts}}
</section>

<footer>
  ORGAN-V: Logos &mdash; analytics-engine &mdash; Privacy-first analytics via GoatCounter
</footer>
</body>
</html>
`))
