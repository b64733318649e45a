package template

// Creative: accent sidebar carrying contact, skills and certifications; main
// column carries the narrative sections. Skill levels render as bars here.
const creativeHTML = `<div style="font-family:'Segoe UI',Tahoma,sans-serif;color:#1f2937;background:#ffffff;width:210mm;min-height:297mm;box-sizing:border-box;display:flex;">
<aside style="background:{{.Accent}};color:#ffffff;width:64mm;box-sizing:border-box;padding:28px 20px;">
<h1 style="margin:0;font-size:22px;line-height:1.2;">{{.Name}}</h1>
{{if .Title}}<p style="margin:6px 0 0;font-size:12px;opacity:0.85;">{{.Title}}</p>{{end}}
{{if .Contacts}}<div data-section="contact" style="margin-top:20px;">
<h2 style="font-size:11px;text-transform:uppercase;letter-spacing:1.5px;border-bottom:1px solid rgba(255,255,255,0.4);padding-bottom:3px;margin:0 0 8px;">Contact</h2>
{{range .Contacts}}<div style="font-size:10px;margin-bottom:5px;word-break:break-all;">{{display .}}</div>{{end}}
</div>{{end}}
{{if .Doc.Skills}}<div data-section="skills" style="margin-top:20px;">
<h2 style="font-size:11px;text-transform:uppercase;letter-spacing:1.5px;border-bottom:1px solid rgba(255,255,255,0.4);padding-bottom:3px;margin:0 0 8px;">Skills</h2>
{{range .Doc.Skills}}<div style="margin-bottom:7px;">
<div style="font-size:10px;margin-bottom:2px;">{{.Name}}</div>
<div style="background:rgba(255,255,255,0.25);height:4px;border-radius:2px;"><div style="background:#ffffff;height:4px;border-radius:2px;width:{{.Level}}%;"></div></div>
</div>{{end}}
</div>{{end}}
{{if .Doc.Certificates}}<div data-section="certificates" style="margin-top:20px;">
<h2 style="font-size:11px;text-transform:uppercase;letter-spacing:1.5px;border-bottom:1px solid rgba(255,255,255,0.4);padding-bottom:3px;margin:0 0 8px;">Certifications</h2>
{{range .Doc.Certificates}}<div style="font-size:10px;margin-bottom:6px;">{{.Name}}{{if .Issuer}}<br><span style="opacity:0.75;">{{.Issuer}}{{if .Date}}, {{.Date}}{{end}}</span>{{end}}</div>{{end}}
</div>{{end}}
</aside>
<main style="flex:1;box-sizing:border-box;padding:28px 24px;">
{{if .Doc.Personal.Summary}}<section data-section="summary" style="margin-bottom:16px;">
<h2 style="font-size:13px;color:{{.Accent}};margin:0 0 6px;">About</h2>
<p style="margin:0;font-size:11px;line-height:1.55;">{{.Doc.Personal.Summary}}</p>
</section>{{end}}
{{if .Experience}}<section data-section="experience" style="margin-bottom:16px;">
<h2 style="font-size:13px;color:{{.Accent}};margin:0 0 6px;">Experience</h2>
{{range .Experience}}<article style="margin-bottom:10px;font-size:11px;border-left:2px solid {{$.Accent}};padding-left:10px;">
<strong>{{.Role}}</strong>{{if .Company}} &middot; {{.Company}}{{end}}
{{if .Dates}}<div style="font-size:10px;color:#6b7280;">{{.Dates}}</div>{{end}}
{{if .Bullets}}<ul style="margin:4px 0 0;padding-left:14px;line-height:1.5;">
{{range .Bullets}}<li>{{.}}</li>{{end}}
</ul>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Education}}<section data-section="education" style="margin-bottom:16px;">
<h2 style="font-size:13px;color:{{.Accent}};margin:0 0 6px;">Education</h2>
{{range .Education}}<article style="margin-bottom:8px;font-size:11px;border-left:2px solid {{$.Accent}};padding-left:10px;">
<strong>{{.School}}</strong>
<div style="font-size:10px;color:#374151;">{{.Degree}}{{if and .Degree .Field}}, {{end}}{{.Field}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
{{if .Dates}}<div style="font-size:10px;color:#6b7280;">{{.Dates}}</div>{{end}}
</article>{{end}}
</section>{{end}}
{{if .Doc.Projects}}<section data-section="projects">
<h2 style="font-size:13px;color:{{.Accent}};margin:0 0 6px;">Projects</h2>
{{range .Doc.Projects}}<article style="margin-bottom:8px;font-size:11px;border-left:2px solid {{$.Accent}};padding-left:10px;">
<strong>{{.Name}}</strong>{{if .Tech}} <span style="color:#6b7280;font-size:10px;">{{.Tech}}</span>{{end}}
{{if .Description}}<p style="margin:2px 0 0;line-height:1.5;">{{.Description}}</p>{{end}}
{{if .Link}}<div style="font-size:10px;color:{{$.Accent}};">{{shortURL .Link}}</div>{{end}}
</article>{{end}}
</section>{{end}}
</main>
</div>`
