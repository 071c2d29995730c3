package handler

import "html/template"

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.AppName}}</title>
</head>
<body>
<h1>{{.AppName}}</h1>
<form action="/generate" method="post" enctype="multipart/form-data">
  <p><label>Job posting URL<br><input type="url" name="url" size="80" required></label></p>
  <p><label>Resume (PDF, max 5MB)<br><input type="file" name="resume" accept="application/pdf" required></label></p>
  <p><label>Additional information<br><textarea name="additional_info" rows="4" cols="80" maxlength="500"></textarea></label></p>
  <p><button type="submit">Generate emails</button></p>
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.AppName}}</title>
</head>
<body>
{{- if .Error}}
<p class="error">Error: {{.Error}}</p>
{{- else}}
{{- range $i, $m := .Mails}}
{{- if $i}}
<hr>
{{- end}}
<section>
<h2>{{$m.Title}} &middot; {{$m.Company}}</h2>
<pre>{{$m.Email}}</pre>
</section>
{{- end}}
{{- end}}
<p><a href="/">Back</a></p>
</body>
</html>
`))
