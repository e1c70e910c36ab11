package web

import (
	"html/template"
	"net/http"
)

type pageData struct {
	SignedIn bool
	Message  string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Shift Uploader</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 36rem; margin: 3rem auto; padding: 0 1rem; }
.msg { background: #eef6ee; border: 1px solid #9c9; padding: .6rem 1rem; border-radius: .3rem; }
form { margin: 1.5rem 0; }
button { padding: .4rem 1rem; }
.danger { color: #a00; }
</style>
</head>
<body>
<h1>Shift Uploader</h1>
{{if .Message}}<p class="msg">{{.Message}}</p>{{end}}
{{if .SignedIn}}
<form action="/upload" method="post" enctype="multipart/form-data">
<p><input type="file" name="roster" accept="application/pdf" required></p>
<button type="submit">Upload roster</button>
</form>
<form action="/purge" method="post" onsubmit="return confirm('Delete every uploaded shift?')">
<button type="submit" class="danger">Delete all uploaded shifts</button>
</form>
<p><a href="/logout">Sign out</a></p>
{{else}}
<p>Upload your monthly roster PDF and keep Google Calendar in sync.</p>
<p><a href="/auth/google">Sign in with Google</a></p>
{{end}}
</body>
</html>
`))

func renderIndex(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, data)
}
