package models

// User is the account identity returned by the upstream API.
type User struct {
	ID       string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// ReadyStateError marks a failed deployment in the upstream status set.
const ReadyStateError = "ERROR"

type Deployment struct {
	UID        string `json:"uid"`
	ReadyState string `json:"readyState"`
	CreatedAt  int64  `json:"createdAt"`
}

type Project struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	Deployments            []Deployment `json:"latestDeployments"`
	FailedDeploymentsCount int          `json:"failedDeploymentsCount"`
}

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AccountData is the merged result of the user, projects and teams fetches.
type AccountData struct {
	User     User      `json:"user"`
	Projects []Project `json:"projects"`
	Teams    []Team    `json:"teams"`
}
