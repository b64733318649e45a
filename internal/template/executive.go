package template

// Executive: wide name banner, then a two-column body with the narrative on
// the left and skills/education/certifications on the right.
const executiveHTML = `<div style="font-family:Garamond,'Palatino Linotype',serif;color:#111827;background:#ffffff;width:210mm;min-height:297mm;box-sizing:border-box;">
<header style="border-bottom:3px double {{.Accent}};padding:30px 40px 16px;">
<h1 style="margin:0;font-size:30px;color:{{.Accent}};">{{.Name}}</h1>
{{if .Title}}<p style="margin:4px 0 0;font-size:14px;letter-spacing:1px;text-transform:uppercase;color:#4b5563;">{{.Title}}</p>{{end}}
{{if .Contacts}}<p style="margin:8px 0 0;font-size:10px;color:#374151;">{{range $i, $c := .Contacts}}{{if $i}} &nbsp;|&nbsp; {{end}}{{display $c}}{{end}}</p>{{end}}
</header>
<div style="display:flex;padding:20px 40px;gap:24px;">
<main style="width:63%;box-sizing:border-box;">
{{if .Doc.Personal.Summary}}<section data-section="summary" style="margin-bottom:16px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:2px;color:{{.Accent}};margin:0 0 6px;">Executive Summary</h2>
<p style="margin:0;font-size:11px;line-height:1.6;">{{.Doc.Personal.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section data-section="experience" style="margin-bottom:16px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:2px;color:{{.Accent}};margin:0 0 6px;">Experience</h2>
{{range .Experience}}<article style="margin-bottom:12px;font-size:11px;">
<strong>{{.Role}}</strong>
<div style="font-size:10px;color:#4b5563;">{{.Company}}{{if and .Company .Dates}} &middot; {{end}}{{.Dates}}</div>
{{if .Bullets}}<ul style="margin:4px 0 0;padding-left:16px;line-height:1.55;">
{{range .Bullets}}<li>{{.}}</li>{{end}}
</ul>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Doc.Projects}}<section data-section="projects">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:2px;color:{{.Accent}};margin:0 0 6px;">Selected Projects</h2>
{{range .Doc.Projects}}<article style="margin-bottom:8px;font-size:11px;">
<strong>{{.Name}}</strong>{{if .Description}} — {{.Description}}{{end}}{{if .Tech}} <span style="color:#6b7280;font-size:10px;">[{{.Tech}}]</span>{{end}}
</article>{{end}}
</section>{{end}}
</main>
<aside style="width:37%;box-sizing:border-box;border-left:1px solid #e5e7eb;padding-left:20px;">
{{if .Doc.Skills}}<section data-section="skills" style="margin-bottom:16px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:2px;color:{{.Accent}};margin:0 0 6px;">Core Skills</h2>
{{range .Doc.Skills}}<div style="font-size:11px;margin-bottom:4px;">{{.Name}}</div>{{end}}
</section>{{end}}
{{if .Education}}<section data-section="education" style="margin-bottom:16px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:2px;color:{{.Accent}};margin:0 0 6px;">Education</h2>
{{range .Education}}<div style="font-size:11px;margin-bottom:8px;">
<strong>{{.School}}</strong>
<div style="font-size:10px;color:#4b5563;">{{.Degree}}{{if and .Degree .Field}}, {{end}}{{.Field}}</div>
{{if .Dates}}<div style="font-size:10px;color:#6b7280;">{{.Dates}}</div>{{end}}
{{if .GPA}}<div style="font-size:10px;color:#6b7280;">GPA {{.GPA}}</div>{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Certificates}}<section data-section="certificates">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:2px;color:{{.Accent}};margin:0 0 6px;">Certifications</h2>
{{range .Doc.Certificates}}<div style="font-size:11px;margin-bottom:6px;">{{.Name}}{{if .Issuer}}<div style="font-size:10px;color:#4b5563;">{{.Issuer}}{{if .Date}}, {{.Date}}{{end}}</div>{{end}}</div>{{end}}
</section>{{end}}
</aside>
</div>
</div>`
