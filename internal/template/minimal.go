package template

// Minimal: plain typography, thin rules, no color blocks. The accent is used
// only for the name and thin separators.
const minimalHTML = `<div style="font-family:Georgia,'Times New Roman',serif;color:#111827;background:#ffffff;width:210mm;min-height:297mm;box-sizing:border-box;padding:40px 48px;">
<header style="margin-bottom:20px;">
<h1 style="margin:0;font-size:26px;font-weight:normal;color:{{.Accent}};">{{.Name}}</h1>
{{if .Title}}<p style="margin:2px 0 0;font-size:13px;font-style:italic;color:#4b5563;">{{.Title}}</p>{{end}}
{{if .Contacts}}<p style="margin:8px 0 0;font-size:10px;color:#4b5563;">{{range $i, $c := .Contacts}}{{if $i}} | {{end}}{{display $c}}{{end}}</p>{{end}}
<hr style="border:none;border-top:1px solid {{.Accent}};margin:14px 0 0;">
</header>
{{if .Doc.Personal.Summary}}<section data-section="summary" style="margin-bottom:16px;">
<p style="margin:0;font-size:11px;line-height:1.6;">{{.Doc.Personal.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section data-section="experience" style="margin-bottom:16px;">
<h2 style="font-size:12px;font-weight:bold;letter-spacing:2px;text-transform:uppercase;margin:0 0 8px;">Experience</h2>
{{range .Experience}}<article style="margin-bottom:10px;font-size:11px;">
<div><strong>{{.Role}}</strong>{{if .Company}}, {{.Company}}{{end}}{{if .Dates}} <span style="color:#6b7280;">({{.Dates}})</span>{{end}}</div>
{{if .Bullets}}<ul style="margin:4px 0 0;padding-left:18px;line-height:1.55;">
{{range .Bullets}}<li>{{.}}</li>{{end}}
</ul>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Education}}<section data-section="education" style="margin-bottom:16px;">
<h2 style="font-size:12px;font-weight:bold;letter-spacing:2px;text-transform:uppercase;margin:0 0 8px;">Education</h2>
{{range .Education}}<div style="font-size:11px;margin-bottom:6px;">
<strong>{{.School}}</strong>{{if .Degree}} — {{.Degree}}{{end}}{{if .Field}}, {{.Field}}{{end}}{{if .Dates}} <span style="color:#6b7280;">({{.Dates}})</span>{{end}}{{if .GPA}} GPA {{.GPA}}{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Skills}}<section data-section="skills" style="margin-bottom:16px;">
<h2 style="font-size:12px;font-weight:bold;letter-spacing:2px;text-transform:uppercase;margin:0 0 8px;">Skills</h2>
<p style="margin:0;font-size:11px;">{{range $i, $s := .Doc.Skills}}{{if $i}}, {{end}}{{$s.Name}}{{end}}</p>
</section>{{end}}
{{if .Doc.Projects}}<section data-section="projects" style="margin-bottom:16px;">
<h2 style="font-size:12px;font-weight:bold;letter-spacing:2px;text-transform:uppercase;margin:0 0 8px;">Projects</h2>
{{range .Doc.Projects}}<div style="font-size:11px;margin-bottom:6px;">
<strong>{{.Name}}</strong>{{if .Description}} — {{.Description}}{{end}}{{if .Tech}} <span style="color:#6b7280;">[{{.Tech}}]</span>{{end}}
</div>{{end}}
</section>{{end}}
{{if .Doc.Certificates}}<section data-section="certificates">
<h2 style="font-size:12px;font-weight:bold;letter-spacing:2px;text-transform:uppercase;margin:0 0 8px;">Certifications</h2>
{{range .Doc.Certificates}}<div style="font-size:11px;margin-bottom:4px;">{{.Name}}{{if .Issuer}}, {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>{{end}}
</section>{{end}}
</div>`
