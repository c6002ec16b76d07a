// Package story implements the branching phishing story and the quiz that
// follows it: a static scene graph, quiz questions and the play session state
// machine that walks through them.
package story

import "fmt"

// Choice is one option offered by a scene.
type Choice struct {
	Text    string
	Next    int
	Correct bool
}

// Scene is a node of the story graph. Terminal scenes end the story phase
// and carry no choices.
type Scene struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Feedback    string
	Choices     []Choice
	Terminal    bool
}

// QuizQuestion is a multiple-choice question asked after the story.
type QuizQuestion struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

// Graph is a validated, immutable scene arena indexed by scene id.
type Graph struct {
	scenes []Scene
}

// NewGraph validates scenes and returns the graph built from them.
func NewGraph(scenes []Scene) (*Graph, error) {
	g := &Graph{scenes: scenes}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Len returns the number of scenes.
func (g *Graph) Len() int {
	return len(g.scenes)
}

// Scene returns the scene with the given id.
func (g *Graph) Scene(id int) (Scene, bool) {
	if id < 0 || id >= len(g.scenes) {
		return Scene{}, false
	}
	return g.scenes[id], true
}

// Next returns the target of choice choiceIndex in scene sceneID.
func (g *Graph) Next(sceneID, choiceIndex int) (int, error) {
	scene, ok := g.Scene(sceneID)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownScene, sceneID)
	}
	if choiceIndex < 0 || choiceIndex >= len(scene.Choices) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, choiceIndex)
	}
	return scene.Choices[choiceIndex].Next, nil
}

// Validate checks that the graph is well formed: ids match positions, every
// target exists, only terminal scenes lack choices, and the graph is acyclic
// with every scene reachable from scene 0.
func (g *Graph) Validate() error {
	if len(g.scenes) == 0 {
		return ErrEmptyGraph
	}

	for i, s := range g.scenes {
		if s.ID != i {
			return fmt.Errorf("%w: scene at %d has id %d", ErrSceneIDMismatch, i, s.ID)
		}
		if s.Terminal && len(s.Choices) > 0 {
			return fmt.Errorf("%w: %d", ErrTerminalHasChoices, i)
		}
		if !s.Terminal && len(s.Choices) == 0 {
			return fmt.Errorf("%w: %d", ErrDeadEnd, i)
		}
		for _, c := range s.Choices {
			if c.Next < 0 || c.Next >= len(g.scenes) {
				return fmt.Errorf("%w: scene %d -> %d", ErrUnknownTarget, i, c.Next)
			}
		}
	}

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]int, len(g.scenes))

	var visit func(id int) error
	visit = func(id int) error {
		state[id] = inProgress
		for _, c := range g.scenes[id].Choices {
			switch state[c.Next] {
			case inProgress:
				return fmt.Errorf("%w: scene %d -> %d", ErrCycle, id, c.Next)
			case unvisited:
				if err := visit(c.Next); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}

	if err := visit(0); err != nil {
		return err
	}
	for id, st := range state {
		if st == unvisited {
			return fmt.Errorf("%w: %d", ErrUnreachableScene, id)
		}
	}

	return nil
}

// ValidateQuiz checks that the quiz is not empty and every correct answer
// index points at an option.
func ValidateQuiz(questions []QuizQuestion) error {
	if len(questions) == 0 {
		return ErrEmptyQuiz
	}
	for _, q := range questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("%w: question %d", ErrInvalidCorrectIndex, q.ID)
		}
	}
	return nil
}
