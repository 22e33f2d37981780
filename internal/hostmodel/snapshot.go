// Package hostmodel adapts exported building-model data to the types the
// rest of planquery works with. The primary source is a JSON model
// snapshot written by the host design environment; spreadsheet schedule
// exports can supplement its report list.
package hostmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

// snapshotFile is the on-disk JSON layout of a model snapshot.
type snapshotFile struct {
	Project projectDoc  `json:"project"`
	Walls   []wallDoc   `json:"walls,omitempty"`
	Levels  []levelDoc  `json:"levels,omitempty"`
	Rooms   []roomDoc   `json:"rooms,omitempty"`
	Reports []reportDoc `json:"reports,omitempty"`
}

type projectDoc struct {
	Attributes []attributeDoc `json:"attributes,omitempty"`
}

type attributeDoc struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type wallDoc struct {
	ID  string `json:"id,omitempty"`
	Min xyzDoc `json:"min"`
	Max xyzDoc `json:"max"`
}

type xyzDoc struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type levelDoc struct {
	Name string `json:"name"`
}

type roomDoc struct {
	Name string  `json:"name"`
	Area float64 `json:"area"`
}

type reportDoc struct {
	Title string     `json:"title"`
	Rows  [][]string `json:"rows"`
}

// Snapshot is a model snapshot loaded from disk. It satisfies both the
// extraction source and the attribute write-back contracts; attribute
// writes stay in memory until Save.
type Snapshot struct {
	path    string
	attrs   []attributeDoc
	walls   []domain.Wall
	levels  []domain.Level
	rooms   []domain.Room
	reports []domain.Report
	extra   []domain.Report
}

// Load reads and parses a model snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing snapshot file: %w", err)
	}

	s := &Snapshot{
		path:  path,
		attrs: file.Project.Attributes,
	}
	for _, w := range file.Walls {
		s.walls = append(s.walls, domain.Wall{
			ID: w.ID,
			Bounds: domain.BoundingBox{
				Min: domain.XYZ{X: w.Min.X, Y: w.Min.Y, Z: w.Min.Z},
				Max: domain.XYZ{X: w.Max.X, Y: w.Max.Y, Z: w.Max.Z},
			},
		})
	}
	for _, l := range file.Levels {
		s.levels = append(s.levels, domain.Level{Name: l.Name})
	}
	for _, r := range file.Rooms {
		s.rooms = append(s.rooms, domain.Room{Name: r.Name, Area: r.Area})
	}
	for _, r := range file.Reports {
		s.reports = append(s.reports, domain.Report{Title: r.Title, Rows: r.Rows})
	}
	return s, nil
}

// Path returns the file this snapshot was loaded from.
func (s *Snapshot) Path() string {
	return s.path
}

// Attribute returns the value of a named project attribute. The second
// return is false when the attribute does not exist at all; an existing
// attribute with an empty value returns ("", true).
func (s *Snapshot) Attribute(name string) (string, bool) {
	for _, a := range s.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttribute updates a named project attribute, creating it when
// missing. Attribute order is preserved; new attributes append.
func (s *Snapshot) SetAttribute(name, value string) error {
	for i, a := range s.attrs {
		if a.Name == name {
			s.attrs[i].Value = value
			return nil
		}
	}
	s.attrs = append(s.attrs, attributeDoc{Name: name, Value: value})
	return nil
}

// Walls returns the wall extents in the snapshot.
func (s *Snapshot) Walls() []domain.Wall {
	return s.walls
}

// Levels returns the named levels in the snapshot.
func (s *Snapshot) Levels() []domain.Level {
	return s.levels
}

// Rooms returns the named regions in the snapshot.
func (s *Snapshot) Rooms() []domain.Room {
	return s.rooms
}

// Reports returns the tabular schedules in the snapshot, including any
// added with AddReports.
func (s *Snapshot) Reports() []domain.Report {
	if len(s.extra) == 0 {
		return s.reports
	}
	out := make([]domain.Report, 0, len(s.reports)+len(s.extra))
	out = append(out, s.reports...)
	out = append(out, s.extra...)
	return out
}

// AddReports appends externally loaded schedules to the report list.
// They are kept separate from the snapshot's own reports and are not
// written back by Save.
func (s *Snapshot) AddReports(reports ...domain.Report) {
	s.extra = append(s.extra, reports...)
}

// Save writes the snapshot back to its file. Only project attributes are
// mutable, but the whole document is rewritten so the file stays valid.
func (s *Snapshot) Save() error {
	file := snapshotFile{
		Project: projectDoc{Attributes: s.attrs},
	}
	for _, w := range s.walls {
		file.Walls = append(file.Walls, wallDoc{
			ID:  w.ID,
			Min: xyzDoc{X: w.Bounds.Min.X, Y: w.Bounds.Min.Y, Z: w.Bounds.Min.Z},
			Max: xyzDoc{X: w.Bounds.Max.X, Y: w.Bounds.Max.Y, Z: w.Bounds.Max.Z},
		})
	}
	for _, l := range s.levels {
		file.Levels = append(file.Levels, levelDoc{Name: l.Name})
	}
	for _, r := range s.rooms {
		file.Rooms = append(file.Rooms, roomDoc{Name: r.Name, Area: r.Area})
	}
	for _, r := range s.reports {
		file.Reports = append(file.Reports, reportDoc{Title: r.Title, Rows: r.Rows})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}
