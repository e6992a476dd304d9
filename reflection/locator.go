package reflection

import (
	"slices"

	"go.uber.org/zap"

	"github.com/skdltmxn/refmeta/classinfo"
	"github.com/skdltmxn/refmeta/internal/typeenc"
)

// CallSignature is the validated call shape of a located runtime member:
// the encoded return element followed by the encoded argument elements.
type CallSignature struct {
	Return string   `json:"return" yaml:"return"`
	Args   []string `json:"args" yaml:"args"`
}

// NumArgs returns the number of argument elements.
func (s CallSignature) NumArgs() int { return len(s.Args) }

// extractSignature reads the call signature from a member's type encoding.
// Missing encodings, composite markers and unreadable encodings all yield false.
func (r *Resolver) extractSignature(c Class, m Member) (CallSignature, bool) {
	sig, err := typeenc.Parse(m.Encoding)
	if err != nil {
		r.log.Debug("call signature unavailable",
			zap.String("class", c.Name()),
			zap.String("key", m.Key),
			zap.String("encoding", m.Encoding),
			zap.Error(err))
		return CallSignature{}, false
	}
	return CallSignature{Return: sig.Return, Args: slices.Clone(sig.Args)}, true
}

// locateMethod finds the live member behind method entry e of class c.
func (r *Resolver) locateMethod(c Class, rec *classinfo.Record, e *classinfo.MethodEntry) (Member, CallSignature, bool) {
	table := c.Members()
	if table == nil {
		return Member{}, CallSignature{}, false
	}

	key := rec.MethodKey(e)
	var (
		m     Member
		found bool
	)
	switch {
	case e.IsStatic():
		m, found = findMember(table.ClassMembers(), key)
	case c.Kind() == TypeKindInterface:
		m, found = table.ProtocolMember(key, true)
		if !found {
			m, found = table.ProtocolMember(key, false)
		}
	default:
		m, found = findMember(table.InstanceMembers(), key)
	}
	if !found {
		r.logMiss(c, key, "no runtime member")
		return Member{}, CallSignature{}, false
	}

	sig, ok := r.extractSignature(c, m)
	if !ok {
		return Member{}, CallSignature{}, false
	}
	return m, sig, true
}

// locateConstructor finds the live member behind constructor entry e of class c.
// Abstract classes and interfaces have no constructors.
func (r *Resolver) locateConstructor(c Class, rec *classinfo.Record, e *classinfo.MethodEntry) (Member, CallSignature, bool) {
	if c.IsAbstract() || c.Kind() == TypeKindInterface {
		return Member{}, CallSignature{}, false
	}
	table := c.Members()
	if table == nil {
		return Member{}, CallSignature{}, false
	}

	key := rec.MethodKey(e)
	m, found := findMember(table.InstanceMembers(), key)
	if !found {
		r.logMiss(c, key, "no runtime constructor")
		return Member{}, CallSignature{}, false
	}

	sig, ok := r.extractSignature(c, m)
	if !ok {
		return Member{}, CallSignature{}, false
	}
	return m, sig, true
}

// locateField finds the live slot behind field entry e of class c.
func (r *Resolver) locateField(c Class, rec *classinfo.Record, e *classinfo.FieldEntry) (Member, bool) {
	table := c.Members()
	if table == nil {
		return Member{}, false
	}

	key := rec.FieldKey(e)
	members := table.InstanceMembers()
	if e.IsStatic() {
		members = table.ClassMembers()
	}
	m, found := findMember(members, key)
	if !found {
		r.logMiss(c, key, "no runtime field")
	}
	return m, found
}

func (r *Resolver) logMiss(c Class, key, reason string) {
	r.log.Debug(reason, zap.String("class", c.Name()), zap.String("key", key))
}
