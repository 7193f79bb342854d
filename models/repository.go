package models

// Repository запись о репозитории в том виде, в каком её отдаёт GitHub API
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Homepage    string `json:"homepage"`
	HTMLURL     string `json:"html_url"`
	Fork        bool   `json:"fork"`
}

// HasHomepage сообщает, указана ли у репозитория ссылка на живое демо
func (r Repository) HasHomepage() bool {
	return r.Homepage != ""
}
