package render

// Layout markup for the two variants. Both variants apply the same
// section-omission and ordering rules; only the visual arrangement
// differs. Items carry page-break-inside:avoid so the print engine never
// splits an entry across pages.

const classicHTML = `{{define "classic"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Doc.PersonalInfo.Name}}{{.Doc.PersonalInfo.Name}}{{else}}Resume{{end}}</title>
<style>
@page { size: A4; margin: 0; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Georgia, 'Times New Roman', serif; color: {{css .Palette.Body}}; background: #ffffff; width: 210mm; min-height: 297mm; padding: 18mm 16mm; font-size: 10pt; line-height: 1.45; }
header { text-align: center; margin-bottom: 14px; }
h1 { font-size: 22pt; text-transform: uppercase; letter-spacing: 2px; color: {{css .Palette.Heading}}; margin-bottom: 6px; }
.contact { font-size: 9pt; color: {{css .Palette.Muted}}; }
.contact span + span::before { content: " \2022  "; color: {{css .Palette.Muted}}; }
.summary { font-style: italic; text-align: justify; margin-bottom: 14px; }
h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: 1px; color: {{css .Palette.Heading}}; border-bottom: 1.5px solid {{css .Palette.Rule}}; padding-bottom: 2px; margin-bottom: 8px; }
section { margin-bottom: 14px; }
.item { margin-bottom: 10px; page-break-inside: avoid; }
.item-head { display: flex; justify-content: space-between; align-items: baseline; }
.item-title { font-weight: bold; font-size: 10.5pt; text-transform: uppercase; color: {{css .Palette.Heading}}; }
.item-sub { font-weight: bold; font-style: italic; font-size: 9.5pt; color: {{css .Palette.Accent}}; }
.item-dates { font-style: italic; font-size: 9.5pt; color: {{css .Palette.Muted}}; white-space: nowrap; }
.item-meta { font-size: 9.5pt; color: {{css .Palette.Muted}}; }
ul { margin: 3px 0 0 16px; }
li { font-size: 9.5pt; text-align: justify; margin-bottom: 2px; }
.skill-group { margin-bottom: 4px; font-size: 10pt; }
.skill-group b { color: {{css .Palette.Heading}}; }
a { color: {{css .Palette.Accent}}; text-decoration: none; }
</style>
</head>
<body>
<header>
<h1>{{.Doc.PersonalInfo.Name}}</h1>
<div class="contact">
{{with .Doc.PersonalInfo.Location}}<span>{{.}}</span>{{end}}
{{with .Doc.PersonalInfo.Email}}<span>{{.}}</span>{{end}}
{{with .Doc.PersonalInfo.Phone}}<span>{{.}}</span>{{end}}
{{with .Doc.PersonalInfo.LinkedIn}}<span>{{stripURL .}}</span>{{end}}
{{with .Doc.PersonalInfo.GitHub}}<span>{{stripURL .}}</span>{{end}}
{{with .Doc.PersonalInfo.Portfolio}}<span>{{stripURL .}}</span>{{end}}
</div>
</header>
{{with .Doc.Summary}}<p class="summary">{{.}}</p>{{end}}
{{if .Doc.Experience}}<section>
<h2>Experience</h2>
{{range .Doc.Experience}}<div class="item">
<div class="item-head"><span class="item-title">{{.Position}}</span><span class="item-dates">{{dateRange .StartDate .EndDate .Current}}</span></div>
<div class="item-sub">{{.Company}}{{with .Location}} &middot; {{.}}{{end}}</div>
{{if .Responsibilities}}<ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Education}}<section>
<h2>Education</h2>
{{range .Doc.Education}}<div class="item">
<div class="item-head"><span class="item-title">{{.Institution}}</span><span class="item-dates">{{dateRange .StartDate .EndDate false}}</span></div>
<div class="item-meta">{{.Degree}}{{with .GPA}} | GPA: {{.}}{{end}}{{with .Location}} &middot; {{.}}{{end}}</div>
</div>{{end}}
</section>{{end}}
{{if .Doc.Projects}}<section>
<h2>Projects</h2>
{{range .Doc.Projects}}<div class="item">
<div class="item-head"><span class="item-title">{{.Name}}</span>{{with .Link}}<span class="item-dates"><a href="{{.}}">{{stripURL .}}</a></span>{{end}}</div>
{{with .Description}}<div class="item-meta">{{.}}</div>{{end}}
{{if .Technologies}}<div class="item-meta"><b>Tech:</b> {{join .Technologies ", "}}</div>{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Certifications}}<section>
<h2>Certifications</h2>
{{range .Doc.Certifications}}<div class="item">
<div class="item-head"><span class="item-title">{{.Name}}</span><span class="item-dates">{{.Date}}</span></div>
<div class="item-meta">{{.Issuer}}{{with .CredentialID}} &middot; {{.}}{{end}}</div>
</div>{{end}}
</section>{{end}}
{{if .Doc.Skills}}<section>
<h2>Skills</h2>
{{range .Doc.Skills}}<div class="skill-group"><b>{{.Category}}:</b> {{join .Skills ", "}}</div>{{end}}
</section>{{end}}
</body>
</html>
{{end}}`

const modernHTML = `{{define "modern"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{if .Doc.PersonalInfo.Name}}{{.Doc.PersonalInfo.Name}}{{else}}Resume{{end}}</title>
<style>
@page { size: A4; margin: 0; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Helvetica, Arial, sans-serif; color: {{css .Palette.Body}}; background: #ffffff; width: 210mm; min-height: 297mm; display: flex; font-size: 10pt; line-height: 1.5; }
aside { width: 64mm; min-height: 297mm; background: {{css .Palette.Sidebar}}; padding: 16mm 8mm; }
main { flex: 1; padding: 16mm 12mm; }
h1 { font-size: 20pt; color: {{css .Palette.Accent}}; margin-bottom: 10px; line-height: 1.15; }
h2 { font-size: 11pt; text-transform: uppercase; letter-spacing: 1.5px; color: {{css .Palette.Accent}}; margin-bottom: 8px; border-bottom: 2px solid {{css .Palette.Accent}}; padding-bottom: 3px; }
aside h2 { border-bottom: none; }
section { margin-bottom: 14px; }
.contact div { font-size: 9pt; margin-bottom: 4px; word-break: break-all; }
.summary { text-align: justify; margin-bottom: 14px; }
.item { margin-bottom: 11px; page-break-inside: avoid; }
.item-title { font-weight: bold; font-size: 10.5pt; color: {{css .Palette.Heading}}; }
.item-sub { font-weight: 600; font-size: 9.5pt; color: {{css .Palette.AccentSub}}; }
.item-dates { font-size: 9pt; color: {{css .Palette.Muted}}; margin-bottom: 2px; }
.item-meta { font-size: 9.5pt; color: {{css .Palette.Muted}}; }
ul { margin: 3px 0 0 15px; }
li { font-size: 9.5pt; margin-bottom: 2px; }
.skill-group { margin-bottom: 8px; page-break-inside: avoid; }
.skill-cat { font-weight: bold; font-size: 9.5pt; color: {{css .Palette.Heading}}; margin-bottom: 3px; }
.skill-tokens { font-size: 9pt; }
a { color: {{css .Palette.Accent}}; text-decoration: none; }
</style>
</head>
<body>
<aside>
<h1>{{.Doc.PersonalInfo.Name}}</h1>
<section class="contact">
{{with .Doc.PersonalInfo.Email}}<div>{{.}}</div>{{end}}
{{with .Doc.PersonalInfo.Phone}}<div>{{.}}</div>{{end}}
{{with .Doc.PersonalInfo.Location}}<div>{{.}}</div>{{end}}
{{with .Doc.PersonalInfo.LinkedIn}}<div>{{stripURL .}}</div>{{end}}
{{with .Doc.PersonalInfo.GitHub}}<div>{{stripURL .}}</div>{{end}}
{{with .Doc.PersonalInfo.Portfolio}}<div>{{stripURL .}}</div>{{end}}
</section>
{{if .Doc.Skills}}<section>
<h2>Skills</h2>
{{range .Doc.Skills}}<div class="skill-group"><div class="skill-cat">{{.Category}}</div><div class="skill-tokens">{{join .Skills ", "}}</div></div>{{end}}
</section>{{end}}
{{if .Doc.Certifications}}<section>
<h2>Certifications</h2>
{{range .Doc.Certifications}}<div class="item">
<div class="item-title">{{.Name}}</div>
<div class="item-meta">{{.Issuer}}{{with .Date}} &middot; {{.}}{{end}}</div>
</div>{{end}}
</section>{{end}}
</aside>
<main>
{{with .Doc.Summary}}<section><h2>Profile</h2><p class="summary">{{.}}</p></section>{{end}}
{{if .Doc.Experience}}<section>
<h2>Experience</h2>
{{range .Doc.Experience}}<div class="item">
<div class="item-title">{{.Position}}</div>
<div class="item-sub">{{.Company}}{{with .Location}} &middot; {{.}}{{end}}</div>
<div class="item-dates">{{dateRange .StartDate .EndDate .Current}}</div>
{{if .Responsibilities}}<ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Projects}}<section>
<h2>Projects</h2>
{{range .Doc.Projects}}<div class="item">
<div class="item-title">{{.Name}}{{with .Link}} <a href="{{.}}">{{stripURL .}}</a>{{end}}</div>
{{with .Description}}<div class="item-meta">{{.}}</div>{{end}}
{{if .Technologies}}<div class="item-meta">{{join .Technologies ", "}}</div>{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Education}}<section>
<h2>Education</h2>
{{range .Doc.Education}}<div class="item">
<div class="item-title">{{.Institution}}</div>
<div class="item-meta">{{.Degree}}{{with .GPA}} | GPA: {{.}}{{end}}</div>
<div class="item-dates">{{dateRange .StartDate .EndDate false}}</div>
</div>{{end}}
</section>{{end}}
</main>
</body>
</html>
{{end}}`
