package template

// Modern: accent-colored header band, single column body, square bullet
// markers. Cosmetic choices only; data handling is identical across templates.
const modernHTML = `<div style="font-family:'Helvetica Neue',Arial,sans-serif;color:#1f2937;background:#ffffff;width:210mm;min-height:297mm;box-sizing:border-box;">
<header style="background:{{.Accent}};color:#ffffff;padding:28px 36px;">
<h1 style="margin:0;font-size:28px;letter-spacing:0.5px;">{{.Name}}</h1>
{{if .Title}}<p style="margin:4px 0 0;font-size:15px;opacity:0.9;">{{.Title}}</p>{{end}}
{{if .Contacts}}<p style="margin:10px 0 0;font-size:11px;">{{range $i, $c := .Contacts}}{{if $i}} &middot; {{end}}<span>{{display $c}}</span>{{end}}</p>{{end}}
</header>
<main style="padding:24px 36px;">
{{if .Doc.Personal.Summary}}<section data-section="summary" style="margin-bottom:18px;">
<h2 style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:{{.Accent}};border-bottom:2px solid {{.Accent}};padding-bottom:4px;margin:0 0 8px;">Summary</h2>
<p style="margin:0;font-size:12px;line-height:1.5;">{{.Doc.Personal.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section data-section="experience" style="margin-bottom:18px;">
<h2 style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:{{.Accent}};border-bottom:2px solid {{.Accent}};padding-bottom:4px;margin:0 0 8px;">Experience</h2>
{{range .Experience}}<article style="margin-bottom:12px;">
<div style="display:flex;justify-content:space-between;font-size:12px;">
<strong>{{.Role}}{{if and .Role .Company}} — {{end}}{{.Company}}</strong>
{{if .Dates}}<span style="color:#6b7280;">{{.Dates}}</span>{{end}}
</div>
{{if .Bullets}}<ul style="margin:6px 0 0;padding-left:16px;font-size:11px;line-height:1.5;list-style-type:square;">
{{range .Bullets}}<li>{{.}}</li>{{end}}
</ul>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Education}}<section data-section="education" style="margin-bottom:18px;">
<h2 style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:{{.Accent}};border-bottom:2px solid {{.Accent}};padding-bottom:4px;margin:0 0 8px;">Education</h2>
{{range .Education}}<article style="margin-bottom:8px;font-size:12px;">
<div style="display:flex;justify-content:space-between;">
<strong>{{.School}}</strong>
{{if .Dates}}<span style="color:#6b7280;">{{.Dates}}</span>{{end}}
</div>
<div style="font-size:11px;color:#374151;">{{.Degree}}{{if and .Degree .Field}}, {{end}}{{.Field}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
</article>{{end}}
</section>{{end}}
{{if .Doc.Skills}}<section data-section="skills" style="margin-bottom:18px;">
<h2 style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:{{.Accent}};border-bottom:2px solid {{.Accent}};padding-bottom:4px;margin:0 0 8px;">Skills</h2>
<div style="display:flex;flex-wrap:wrap;gap:6px;">
{{range .Doc.Skills}}<span style="background:#f3f4f6;border-radius:3px;padding:3px 8px;font-size:11px;">{{.Name}}</span>{{end}}
</div>
</section>{{end}}
{{if .Doc.Projects}}<section data-section="projects" style="margin-bottom:18px;">
<h2 style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:{{.Accent}};border-bottom:2px solid {{.Accent}};padding-bottom:4px;margin:0 0 8px;">Projects</h2>
{{range .Doc.Projects}}<article style="margin-bottom:8px;font-size:12px;">
<strong>{{.Name}}</strong>{{if .Tech}} <span style="color:#6b7280;font-size:11px;">({{.Tech}})</span>{{end}}
{{if .Description}}<p style="margin:2px 0 0;font-size:11px;line-height:1.5;">{{.Description}}</p>{{end}}
{{if .Link}}<div style="font-size:10px;color:{{$.Accent}};">{{shortURL .Link}}</div>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Doc.Certificates}}<section data-section="certificates">
<h2 style="font-size:13px;text-transform:uppercase;letter-spacing:1px;color:{{.Accent}};border-bottom:2px solid {{.Accent}};padding-bottom:4px;margin:0 0 8px;">Certifications</h2>
{{range .Doc.Certificates}}<div style="font-size:11px;margin-bottom:4px;">
<strong>{{.Name}}</strong>{{if .Issuer}} — {{.Issuer}}{{end}}{{if .Date}} <span style="color:#6b7280;">({{.Date}})</span>{{end}}
</div>{{end}}
</section>{{end}}
</main>
</div>`
