package models

// PlanTree is the epic -> story -> task hierarchy of a project, joined on the
// client from three flat listings.
type PlanTree struct {
	ProjectID int64      `yaml:"project_id"`
	Epics     []EpicNode `yaml:"epics"`
	Orphans   Orphans    `yaml:"orphans,omitempty"`
}

type EpicNode struct {
	Epic    `yaml:",inline"`
	Stories []StoryNode `yaml:"stories,omitempty"`
}

type StoryNode struct {
	Story `yaml:",inline"`
	Tasks []Task `yaml:"tasks,omitempty"`
}

// Orphans collects items whose parent was not part of the same fetch.
type Orphans struct {
	Stories []Story `yaml:"stories,omitempty"`
	Tasks   []Task  `yaml:"tasks,omitempty"`
}

// HasPlan reports whether a plan has been generated for the project.
func (p *PlanTree) HasPlan() bool {
	return len(p.Epics) > 0
}

// TotalStoryPoints sums epic estimates; missing estimates count as zero.
func (p *PlanTree) TotalStoryPoints() float64 {
	var total float64
	for _, e := range p.Epics {
		if e.EstimatedEffort != nil {
			total += *e.EstimatedEffort
		}
	}
	return total
}

// TotalHours sums task estimates across the tree.
func (p *PlanTree) TotalHours() float64 {
	var total float64
	for _, e := range p.Epics {
		for _, s := range e.Stories {
			for _, t := range s.Tasks {
				if t.EstimatedHours != nil {
					total += *t.EstimatedHours
				}
			}
		}
	}
	return total
}

// BuildPlanTree joins stories to epics by EpicID and tasks to stories by
// StoryID, keeping the input order at each level.
func BuildPlanTree(projectID int64, epics []Epic, stories []Story, tasks []Task) *PlanTree {
	tree := &PlanTree{ProjectID: projectID, Epics: make([]EpicNode, 0, len(epics))}

	epicIdx := make(map[int64]int, len(epics))
	for _, e := range epics {
		epicIdx[e.ID] = len(tree.Epics)
		tree.Epics = append(tree.Epics, EpicNode{Epic: e})
	}

	type storyRef struct{ epic, story int }
	storyIdx := make(map[int64]storyRef, len(stories))
	for _, s := range stories {
		ei, ok := epicIdx[s.EpicID]
		if !ok {
			tree.Orphans.Stories = append(tree.Orphans.Stories, s)
			continue
		}
		node := &tree.Epics[ei]
		storyIdx[s.ID] = storyRef{epic: ei, story: len(node.Stories)}
		node.Stories = append(node.Stories, StoryNode{Story: s})
	}

	for _, t := range tasks {
		ref, ok := storyIdx[t.StoryID]
		if !ok {
			tree.Orphans.Tasks = append(tree.Orphans.Tasks, t)
			continue
		}
		node := &tree.Epics[ref.epic].Stories[ref.story]
		node.Tasks = append(node.Tasks, t)
	}

	return tree
}
