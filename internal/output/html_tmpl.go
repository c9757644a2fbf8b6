// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #6c757d;
  --warn-bg: #fff3cd; --warn-fg: #664d03; --err-bg: #f8d7da; --err-fg: #842029;
  --info-bg: #cff4fc; --info-fg: #055160; --accent: #0d6efd;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --warn-bg: #332701; --warn-fg: #ffda6a; --err-bg: #2c0b0e; --err-fg: #ea868f;
    --info-bg: #032830; --info-fg: #6edff6; --accent: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; display: flex; min-height: 100vh; }
aside { width: 220px; flex-shrink: 0; background: var(--card-bg); border-right: 1px solid var(--border); padding: 1rem; }
aside h2 { font-size: 1rem; margin-bottom: .75rem; }
aside label { display: block; font-size: .8125rem; color: var(--muted); margin-bottom: .25rem; }
aside select { width: 100%; padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--bg); color: var(--fg); }
aside hr { border: 0; border-top: 1px solid var(--border); margin: 1rem 0; }
main { flex: 1; padding: 1rem 1.5rem; max-width: 1200px; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
.tabs { display: flex; gap: .25rem; border-bottom: 1px solid var(--border); margin-bottom: 1rem; }
.tabs button { background: none; border: 0; border-bottom: 2px solid transparent; padding: .5rem .875rem; color: var(--muted); cursor: pointer; font-size: .875rem; }
.tabs button.active { color: var(--accent); border-bottom-color: var(--accent); }
.panel h2 { font-size: 1.125rem; margin-bottom: .75rem; }
.alert { border-radius: 6px; padding: .625rem .875rem; margin-bottom: .75rem; font-size: .875rem; }
.alert-warning { background: var(--warn-bg); color: var(--warn-fg); }
.alert-error { background: var(--err-bg); color: var(--err-fg); }
.alert-info { background: var(--info-bg); color: var(--info-fg); }
.charts { display: grid; grid-template-columns: 1fr; gap: 1rem; margin-bottom: 1rem; }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; overflow-x: auto; }
.chart-box svg { max-width: 100%; height: auto; }
.meta { font-size: .75rem; color: var(--muted); margin-bottom: .5rem; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
th, td { padding: .375rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
footer { margin-top: 2rem; padding-top: .75rem; border-top: 1px solid var(--border); font-size: .75rem; color: var(--muted); }
.hidden { display: none; }
</style>
</head>
<body>
<aside>
  <h2>Filters</h2>
  <label for="section-select">Select Section</label>
  <select id="section-select" onchange="showSection(this.value)">
    {{range .Panels}}<option value="{{.ID}}"{{if .Active}} selected{{end}}>{{.ID}}</option>{{end}}
  </select>
  <hr>
  <p class="meta">Strategy: {{.Strategy}}</p>
</aside>
<main>
<header>
  <h1>{{.Title}}</h1>
  <p>{{.Intro}}</p>
</header>

<nav class="tabs">
  {{range .Panels}}<button type="button" data-section="{{.ID}}"{{if .Active}} class="active"{{end}} onclick="showSection('{{.ID}}')">{{.Title}}</button>{{end}}
</nav>

{{range .Panels}}
<section class="panel{{if not .Active}} hidden{{end}}" id="panel-{{.ID}}" data-section="{{.ID}}">
  <h2>{{.Title}} Overview</h2>
  {{if .Message}}<div class="alert alert-{{.Level}}">{{.Message}}</div>{{end}}
  {{if .Charts}}<div class="charts">
    {{range .Charts}}<div class="chart-box">{{.SVG}}</div>{{end}}
  </div>{{end}}
  {{range .Notices}}<div class="alert alert-info">{{.}}</div>{{end}}
  {{if .Columns}}
  <p class="meta">{{len .Rows}} row(s){{if .Question}} &middot; questions: {{range $i, $q := .Question}}{{if $i}}, {{end}}{{$q}}{{end}}{{end}}{{if .Relabel}} &middot; columns relabeled to Category/Count{{end}}</p>
  <table>
    <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
    <tbody>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
    </tbody>
  </table>
  {{end}}
</section>
{{end}}

<footer>
  <p>{{.Caption}}</p>
  <p>Generated {{.GeneratedAt}} &middot; run {{.RunID}}</p>
</footer>
</main>

<script>
function showSection(id) {
  var panels = document.querySelectorAll("section.panel");
  for (var i = 0; i < panels.length; i++) {
    panels[i].classList.toggle("hidden", panels[i].dataset.section !== id);
  }
  var tabs = document.querySelectorAll(".tabs button");
  for (var j = 0; j < tabs.length; j++) {
    tabs[j].classList.toggle("active", tabs[j].dataset.section === id);
  }
  var sel = document.getElementById("section-select");
  if (sel.value !== id) sel.value = id;
}
</script>
</body>
</html>`
