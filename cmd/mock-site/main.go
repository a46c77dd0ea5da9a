package main

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

const (
	totalPages   = 5
	postsPerPage = 4
)

type post struct {
	Slug     string
	Title    string
	Category string
	Summary  string
	Date     string
}

type pageData struct {
	Posts []post
	Prev  string
	Next  string
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html><head><title>Mock archive</title></head>
<body>
{{range .Posts}}<article class="post post-inner">
  <a href="/{{.Slug}}/"><img src="/images/{{.Slug}}.png" alt=""></a>
  <p class="category">{{.Category}}</p>
  <h2><a href="/{{.Slug}}/">{{.Title}}</a></h2>
  <p class="meta">by mock</p>
  <p>{{.Summary}}</p>
  <time datetime="{{.Date}}">{{.Date}}</time>
</article>
{{end}}<ul class="pagination">
{{if .Prev}}  <li class="prev left"><a href="{{.Prev}}">&laquo; Previous</a></li>
{{end}}{{if .Next}}  <li class="next right"><a href="{{.Next}}">Next &raquo;</a></li>
{{end}}</ul>
</body></html>
`))

func main() {
	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, 1)
	}).Methods("GET")
	r.HandleFunc("/page/{n:[0-9]+}/", func(w http.ResponseWriter, r *http.Request) {
		n, _ := strconv.Atoi(mux.Vars(r)["n"])
		if n < 1 || n > totalPages {
			http.NotFound(w, r)
			return
		}
		renderPage(w, n)
	}).Methods("GET")

	slog.Info("Mock listing site running on :8081", "pages", totalPages)
	if err := http.ListenAndServe(":8081", r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func renderPage(w http.ResponseWriter, n int) {
	data := pageData{}
	for i := 0; i < postsPerPage; i++ {
		id := (n-1)*postsPerPage + i + 1
		data.Posts = append(data.Posts, post{
			Slug:     fmt.Sprintf("post-%d", id),
			Title:    fmt.Sprintf("Mock Post %d", id),
			Category: []string{"News", "Guides", "Reviews"}[id%3],
			Summary:  fmt.Sprintf("Summary of mock post %d.", id),
			Date:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Add(-time.Duration(id) * 24 * time.Hour).Format(time.RFC3339),
		})
	}
	if n > 1 {
		data.Prev = pagePath(n - 1)
	}
	if n < totalPages {
		data.Next = pagePath(n + 1)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}

func pagePath(n int) string {
	if n == 1 {
		return "/"
	}
	return fmt.Sprintf("/page/%d/", n)
}
