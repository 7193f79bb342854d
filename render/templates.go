package render

// cardTemplate разметка одной карточки; внешние поля проходят через esc
const cardTemplate = `{{define "card"}}<div class="card h-100">
  <div class="card-body d-flex flex-column">
    <h5 class="card-title">{{esc .Name}}</h5>
    <p class="card-text text-muted mb-3">{{esc .Description}}</p>
    <div class="mt-auto d-flex justify-content-between align-items-center">
      <small class="text-muted"><i class="bi bi-code-slash"></i> {{esc .Language}}</small>
      <small class="text-muted"><i class="bi bi-star-fill text-warning"></i> {{.Stars}}</small>
    </div>
  </div>
  <div class="card-footer bg-transparent border-0 d-flex gap-2">
    <a class="btn btn-sm btn-outline-primary flex-grow-1" href="{{esc .RepoURL}}" target="_blank" rel="noopener">View Repo</a>
    {{if .IsLive}}<a class="btn btn-sm btn-primary" href="{{esc .HomepageURL}}" target="_blank" rel="noopener">Live</a>{{else}}<button class="btn btn-sm btn-secondary repo-details-btn" type="button">Details</button>{{end}}
  </div>
</div>{{end}}`

// gridTemplate колонка на каждую карточку либо уведомление о пустом списке
const gridTemplate = `{{define "grid"}}{{if .}}{{range .}}<div class="col-md-6 col-lg-4 fade-in">
{{template "card" .}}
</div>
{{end}}{{else}}<div class="col-12"><div class="alert alert-info">{{empty}}</div></div>
{{end}}{{end}}`

const errorTemplate = `{{define "error"}}<div class="alert alert-warning">Unable to load GitHub projects right now. ({{esc .}})</div>
{{end}}`
