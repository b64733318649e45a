package template

// Classic: centered serif header and traditional double-ruled section titles.
const classicHTML = `<div style="font-family:'Times New Roman',Times,serif;color:#1f2937;background:#ffffff;width:210mm;min-height:297mm;box-sizing:border-box;padding:36px 44px;">
<header style="text-align:center;margin-bottom:18px;">
<h1 style="margin:0;font-size:24px;letter-spacing:1px;text-transform:uppercase;color:{{.Accent}};">{{.Name}}</h1>
{{if .Title}}<p style="margin:4px 0 0;font-size:13px;">{{.Title}}</p>{{end}}
{{if .Contacts}}<p style="margin:6px 0 0;font-size:10px;color:#374151;">{{range $i, $c := .Contacts}}{{if $i}} &bull; {{end}}{{display $c}}{{end}}</p>{{end}}
</header>
{{if .Doc.Personal.Summary}}<section data-section="summary" style="margin-bottom:14px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:1px;border-top:1px solid {{.Accent}};border-bottom:1px solid {{.Accent}};padding:3px 0;margin:0 0 6px;text-align:center;">Summary</h2>
<p style="margin:0;font-size:11px;line-height:1.5;">{{.Doc.Personal.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section data-section="experience" style="margin-bottom:14px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:1px;border-top:1px solid {{.Accent}};border-bottom:1px solid {{.Accent}};padding:3px 0;margin:0 0 6px;text-align:center;">Experience</h2>
{{range .Experience}}<article style="margin-bottom:10px;font-size:11px;">
<div style="display:flex;justify-content:space-between;">
<span><strong>{{.Company}}</strong>{{if and .Company .Role}} — {{end}}<em>{{.Role}}</em></span>
{{if .Dates}}<span>{{.Dates}}</span>{{end}}
</div>
{{if .Bullets}}<ul style="margin:4px 0 0;padding-left:18px;line-height:1.5;list-style-type:disc;">
{{range .Bullets}}<li>{{.}}</li>{{end}}
</ul>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Education}}<section data-section="education" style="margin-bottom:14px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:1px;border-top:1px solid {{.Accent}};border-bottom:1px solid {{.Accent}};padding:3px 0;margin:0 0 6px;text-align:center;">Education</h2>
{{range .Education}}<article style="font-size:11px;margin-bottom:6px;">
<div style="display:flex;justify-content:space-between;">
<span><strong>{{.School}}</strong>{{if .Degree}} — {{.Degree}}{{end}}{{if .Field}}, {{.Field}}{{end}}</span>
{{if .Dates}}<span>{{.Dates}}</span>{{end}}
</div>
{{if .GPA}}<div style="font-size:10px;color:#4b5563;">GPA: {{.GPA}}</div>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Doc.Skills}}<section data-section="skills" style="margin-bottom:14px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:1px;border-top:1px solid {{.Accent}};border-bottom:1px solid {{.Accent}};padding:3px 0;margin:0 0 6px;text-align:center;">Skills</h2>
<p style="margin:0;font-size:11px;text-align:center;">{{range $i, $s := .Doc.Skills}}{{if $i}} &bull; {{end}}{{$s.Name}}{{end}}</p>
</section>{{end}}
{{if .Doc.Projects}}<section data-section="projects" style="margin-bottom:14px;">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:1px;border-top:1px solid {{.Accent}};border-bottom:1px solid {{.Accent}};padding:3px 0;margin:0 0 6px;text-align:center;">Projects</h2>
{{range .Doc.Projects}}<article style="font-size:11px;margin-bottom:6px;">
<strong>{{.Name}}</strong>{{if .Tech}} <em>({{.Tech}})</em>{{end}}
{{if .Description}}<p style="margin:2px 0 0;line-height:1.5;">{{.Description}}</p>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Doc.Certificates}}<section data-section="certificates">
<h2 style="font-size:12px;text-transform:uppercase;letter-spacing:1px;border-top:1px solid {{.Accent}};border-bottom:1px solid {{.Accent}};padding:3px 0;margin:0 0 6px;text-align:center;">Certifications</h2>
{{range .Doc.Certificates}}<div style="font-size:11px;margin-bottom:4px;text-align:center;">{{.Name}}{{if .Issuer}} — {{.Issuer}}{{end}}{{if .Date}} ({{.Date}}){{end}}</div>{{end}}
</section>{{end}}
</div>`
