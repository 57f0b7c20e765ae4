package permissions

import (
	"fmt"
	"os"
	"strings"

	"engetrack/internal/domain/entities"

	"gopkg.in/yaml.v3"
)

// Permission is one departmental capability.
type Permission string

const (
	Admin      Permission = "admin"
	Engenharia Permission = "engenharia"
	Tecnica    Permission = "tecnica"
	Digitacao  Permission = "digitacao"
	Medicina   Permission = "medicina"
	Financeiro Permission = "financeiro"
	Avaliacao  Permission = "avaliacao"
)

var all = []Permission{Admin, Engenharia, Tecnica, Digitacao, Medicina, Financeiro, Avaliacao}

// Set is an identity's capability set.
type Set map[Permission]struct{}

func NewSet(perms ...Permission) Set {
	s := make(Set, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

func (s Set) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// HasAny reports whether the set holds at least one of the given capabilities.
func (s Set) HasAny(perms ...Permission) bool {
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// usuario mirrors one entry of the permissions YAML artifact:
//
//	usuarios:
//	  - email: ana@example.com
//	    nome: Ana Souza
//	    permissoes: [tecnica]
type usuario struct {
	Email      string   `yaml:"email"`
	Nome       string   `yaml:"nome"`
	Permissoes []string `yaml:"permissoes"`
}

type arquivoPermissoes struct {
	Usuarios []usuario `yaml:"usuarios"`
}

type entrada struct {
	nome string
	set  Set
}

// Resolver maps authenticated emails to capability sets. The table is loaded
// once at startup and is immutable afterwards.
type Resolver struct {
	porEmail map[string]entrada
}

// LoadResolver reads the YAML permission table. A set containing "admin" is
// expanded to every capability at load time.
func LoadResolver(path string) (*Resolver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading permissions file: %w", err)
	}
	var arq arquivoPermissoes
	if err := yaml.Unmarshal(raw, &arq); err != nil {
		return nil, fmt.Errorf("parsing permissions file: %w", err)
	}

	r := &Resolver{porEmail: make(map[string]entrada, len(arq.Usuarios))}
	for _, u := range arq.Usuarios {
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" {
			continue
		}
		set := NewSet()
		for _, p := range u.Permissoes {
			perm := Permission(strings.ToLower(strings.TrimSpace(p)))
			if !valida(perm) {
				return nil, fmt.Errorf("unknown permission %q for %s", p, email)
			}
			set[perm] = struct{}{}
		}
		if set.Has(Admin) {
			set = NewSet(all...)
		}
		r.porEmail[email] = entrada{nome: strings.TrimSpace(u.Nome), set: set}
	}
	return r, nil
}

func valida(p Permission) bool {
	for _, v := range all {
		if v == p {
			return true
		}
	}
	return false
}

// Resolve returns the capability set for an email. Unknown emails resolve to
// the empty set, which means no access.
func (r *Resolver) Resolve(email string) Set {
	e, ok := r.porEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return NewSet()
	}
	return e.set
}

// DisplayName returns the configured display name for an email, used to match
// tecnica-scoped identities against Servico.Tecnico.
func (r *Resolver) DisplayName(email string) string {
	e, ok := r.porEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return ""
	}
	return e.nome
}

// CanAccessServico reports whether an identity may read or act on a service.
// Identities whose only capability is tecnica are restricted to services
// assigned to their own display name.
func CanAccessServico(set Set, displayName string, s entities.Servico) bool {
	if len(set) == 0 {
		return false
	}
	if set.Has(Admin) {
		return true
	}
	if len(set) == 1 && set.Has(Tecnica) {
		return s.Tecnico != "" && s.Tecnico == displayName
	}
	return true
}
