// Package skills holds a curated ontology of technical skills and a
// deterministic gap analysis between a resume and a job description.
package skills

import "strings"

// Skill is one canonical entry in the ontology.
type Skill struct {
	Name     string
	Category string
	Aliases  []string
	Related  []string
}

// Ontology indexes skills by their canonical name and every alias.
type Ontology struct {
	byKey map[string]*Skill
}

// NewOntology builds the default ontology.
func NewOntology() *Ontology {
	o := &Ontology{byKey: make(map[string]*Skill)}
	for i := range defaultSkills {
		o.add(&defaultSkills[i])
	}
	return o
}

func (o *Ontology) add(s *Skill) {
	o.byKey[normalizeKey(s.Name)] = s
	for _, alias := range s.Aliases {
		o.byKey[normalizeKey(alias)] = s
	}
}

// Lookup resolves a raw skill string to its ontology entry, if known.
func (o *Ontology) Lookup(raw string) (*Skill, bool) {
	s, ok := o.byKey[normalizeKey(raw)]
	return s, ok
}

// Normalize maps a raw skill string to its canonical name. Unknown skills
// come back trimmed but otherwise unchanged.
func (o *Ontology) Normalize(raw string) string {
	if s, ok := o.Lookup(raw); ok {
		return s.Name
	}
	return strings.TrimSpace(raw)
}

func normalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

var defaultSkills = []Skill{
	{Name: "Python", Category: "language", Aliases: []string{"python3", "py"}, Related: []string{"Django", "Flask", "FastAPI", "Pandas"}},
	{Name: "Go", Category: "language", Aliases: []string{"golang"}, Related: []string{"gRPC", "Docker", "Kubernetes"}},
	{Name: "Java", Category: "language", Aliases: []string{"java8", "java11", "java17"}, Related: []string{"Spring", "Maven", "Kotlin"}},
	{Name: "JavaScript", Category: "language", Aliases: []string{"js", "ecmascript"}, Related: []string{"TypeScript", "React", "Node.js"}},
	{Name: "TypeScript", Category: "language", Aliases: []string{"ts"}, Related: []string{"JavaScript", "React", "Angular"}},
	{Name: "C++", Category: "language", Aliases: []string{"cpp", "cplusplus"}, Related: []string{"C", "Rust"}},
	{Name: "C#", Category: "language", Aliases: []string{"csharp", ".net", "dotnet"}, Related: []string{"ASP.NET", "Azure"}},
	{Name: "Rust", Category: "language", Aliases: []string{}, Related: []string{"C++", "WebAssembly"}},
	{Name: "SQL", Category: "database", Aliases: []string{"structured query language"}, Related: []string{"PostgreSQL", "MySQL"}},
	{Name: "PostgreSQL", Category: "database", Aliases: []string{"postgres", "psql"}, Related: []string{"SQL", "MySQL"}},
	{Name: "MySQL", Category: "database", Aliases: []string{"mariadb"}, Related: []string{"SQL", "PostgreSQL"}},
	{Name: "MongoDB", Category: "database", Aliases: []string{"mongo"}, Related: []string{"NoSQL", "Redis"}},
	{Name: "Redis", Category: "database", Aliases: []string{}, Related: []string{"Memcached", "MongoDB"}},
	{Name: "Docker", Category: "infrastructure", Aliases: []string{"containers", "containerization"}, Related: []string{"Kubernetes", "CI/CD"}},
	{Name: "Kubernetes", Category: "infrastructure", Aliases: []string{"k8s"}, Related: []string{"Docker", "Helm", "AWS"}},
	{Name: "AWS", Category: "cloud", Aliases: []string{"amazon web services"}, Related: []string{"GCP", "Azure", "Terraform"}},
	{Name: "GCP", Category: "cloud", Aliases: []string{"google cloud", "google cloud platform"}, Related: []string{"AWS", "Azure", "Kubernetes"}},
	{Name: "Azure", Category: "cloud", Aliases: []string{"microsoft azure"}, Related: []string{"AWS", "GCP", "C#"}},
	{Name: "Terraform", Category: "infrastructure", Aliases: []string{"iac"}, Related: []string{"AWS", "Ansible"}},
	{Name: "CI/CD", Category: "infrastructure", Aliases: []string{"cicd", "continuous integration", "continuous delivery"}, Related: []string{"Jenkins", "GitHub Actions", "Docker"}},
	{Name: "Git", Category: "tooling", Aliases: []string{"github", "gitlab", "version control"}, Related: []string{"CI/CD"}},
	{Name: "React", Category: "frontend", Aliases: []string{"reactjs", "react.js"}, Related: []string{"JavaScript", "TypeScript", "Next.js"}},
	{Name: "Angular", Category: "frontend", Aliases: []string{"angularjs"}, Related: []string{"TypeScript", "JavaScript"}},
	{Name: "Vue", Category: "frontend", Aliases: []string{"vuejs", "vue.js"}, Related: []string{"JavaScript", "TypeScript"}},
	{Name: "Node.js", Category: "backend", Aliases: []string{"node", "nodejs"}, Related: []string{"JavaScript", "Express"}},
	{Name: "Django", Category: "backend", Aliases: []string{}, Related: []string{"Python", "Flask"}},
	{Name: "Flask", Category: "backend", Aliases: []string{}, Related: []string{"Python", "FastAPI"}},
	{Name: "FastAPI", Category: "backend", Aliases: []string{}, Related: []string{"Python", "Flask"}},
	{Name: "Spring", Category: "backend", Aliases: []string{"spring boot", "springboot"}, Related: []string{"Java", "Kotlin"}},
	{Name: "gRPC", Category: "backend", Aliases: []string{"grpc"}, Related: []string{"Go", "Protocol Buffers"}},
	{Name: "GraphQL", Category: "backend", Aliases: []string{}, Related: []string{"REST", "Node.js"}},
	{Name: "REST", Category: "backend", Aliases: []string{"rest api", "restful"}, Related: []string{"GraphQL", "HTTP"}},
	{Name: "Kafka", Category: "messaging", Aliases: []string{"apache kafka"}, Related: []string{"RabbitMQ", "Event Streaming"}},
	{Name: "RabbitMQ", Category: "messaging", Aliases: []string{"amqp"}, Related: []string{"Kafka"}},
	{Name: "Machine Learning", Category: "data", Aliases: []string{"ml"}, Related: []string{"Python", "TensorFlow", "PyTorch"}},
	{Name: "TensorFlow", Category: "data", Aliases: []string{"tf"}, Related: []string{"Machine Learning", "PyTorch"}},
	{Name: "PyTorch", Category: "data", Aliases: []string{"torch"}, Related: []string{"Machine Learning", "TensorFlow"}},
	{Name: "Pandas", Category: "data", Aliases: []string{}, Related: []string{"Python", "NumPy"}},
	{Name: "NumPy", Category: "data", Aliases: []string{"numpy"}, Related: []string{"Python", "Pandas"}},
	{Name: "Spark", Category: "data", Aliases: []string{"apache spark", "pyspark"}, Related: []string{"Hadoop", "Scala"}},
	{Name: "Linux", Category: "infrastructure", Aliases: []string{"unix", "bash", "shell scripting"}, Related: []string{"Docker", "Git"}},
	{Name: "Agile", Category: "process", Aliases: []string{"scrum", "kanban"}, Related: []string{}},
}
