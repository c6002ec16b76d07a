package story

import (
	"fmt"
	"math"
)

// Phase is the top-level state of a play session.
type Phase string

const (
	PhaseStory   Phase = "story"
	PhaseQuiz    Phase = "quiz"
	PhaseResults Phase = "results"
)

// ChoiceOutcome describes a story choice that was just made.
type ChoiceOutcome struct {
	Correct  bool
	Feedback string
	Next     int

	// Generation is the session generation the pending advance belongs to.
	Generation uint64
}

// AnswerOutcome describes a quiz answer that was just given.
type AnswerOutcome struct {
	Correct       bool
	CorrectAnswer int
	Explanation   string
	Generation    uint64
}

// Session is a single play-through of the story and the quiz.
//
// Choose and Answer lock input and leave a transition pending; the caller
// completes it with Advance, EnterQuiz or NextQuestion after its dwell
// interval. Reset bumps the generation so callers can drop timers scheduled
// for an earlier play-through. A Session is not safe for concurrent use.
type Session struct {
	graph *Graph
	quiz  []QuizQuestion

	phase      Phase
	current    int
	storyScore int
	quizScore  int
	question   int
	history    []int

	locked     bool
	pending    int
	hasPending bool
	selected   int

	generation uint64
}

// NewSession starts a play-through at scene 0.
func NewSession(graph *Graph, quiz []QuizQuestion) *Session {
	s := &Session{graph: graph, quiz: quiz}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.phase = PhaseStory
	s.current = 0
	s.storyScore = 0
	s.quizScore = 0
	s.question = 0
	s.history = nil
	s.locked = false
	s.pending = 0
	s.hasPending = false
	s.selected = -1
}

// Reset restores the initial story state and invalidates pending timers.
func (s *Session) Reset() {
	s.reset()
	s.generation++
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Locked() bool { return s.locked }
func (s *Session) StoryScore() int { return s.storyScore }
func (s *Session) QuizScore() int { return s.quizScore }
func (s *Session) TotalScore() int { return s.storyScore + s.quizScore }
func (s *Session) Generation() uint64 { return s.generation }
func (s *Session) QuestionIndex() int { return s.question }
func (s *Session) QuestionCount() int { return len(s.quiz) }
func (s *Session) SelectedAnswer() int { return s.selected }
func (s *Session) CurrentSceneID() int { return s.current }
func (s *Session) SceneCount() int { return s.graph.Len() }
func (s *Session) History() []int { return append([]int(nil), s.history...) }

// CurrentScene returns the scene the pointer is on.
func (s *Session) CurrentScene() Scene {
	sc, _ := s.graph.Scene(s.current)
	return sc
}

// CurrentQuestion returns the question being asked in the quiz phase.
func (s *Session) CurrentQuestion() (QuizQuestion, bool) {
	if s.phase != PhaseQuiz || s.question >= len(s.quiz) {
		return QuizQuestion{}, false
	}
	return s.quiz[s.question], true
}

// Progress is the story progress in percent, derived from the current scene id.
func (s *Session) Progress() int {
	if s.graph.Len() == 0 {
		return 0
	}
	return int(math.Round(float64(s.current) / float64(s.graph.Len()) * 100))
}

// Choose picks choice i of the current scene.
func (s *Session) Choose(i int) (ChoiceOutcome, error) {
	if s.phase != PhaseStory {
		return ChoiceOutcome{}, ErrWrongPhase
	}
	if s.locked {
		return ChoiceOutcome{}, ErrInputLocked
	}

	next, err := s.graph.Next(s.current, i)
	if err != nil {
		return ChoiceOutcome{}, err
	}

	scene := s.CurrentScene()
	choice := scene.Choices[i]

	s.locked = true
	s.history = append(s.history, s.current)
	if choice.Correct {
		s.storyScore += PointsPerCorrect
	}
	s.pending, s.hasPending = next, true

	return ChoiceOutcome{
		Correct:    choice.Correct,
		Feedback:   scene.Feedback,
		Next:       next,
		Generation: s.generation,
	}, nil
}

// Advance completes the pending story transition. It reports whether the
// new scene is terminal, in which case EnterQuiz should follow after the end
// delay.
func (s *Session) Advance() (bool, error) {
	if s.phase != PhaseStory {
		return false, ErrWrongPhase
	}
	if !s.hasPending {
		return false, ErrNothingPending
	}

	s.current = s.pending
	s.hasPending = false
	s.locked = false

	return s.CurrentScene().Terminal, nil
}

// EnterQuiz switches from a terminal scene to the first quiz question.
func (s *Session) EnterQuiz() error {
	if s.phase != PhaseStory {
		return ErrWrongPhase
	}
	if s.locked {
		return ErrInputLocked
	}
	if !s.CurrentScene().Terminal {
		return fmt.Errorf("%w: %d", ErrNotTerminal, s.current)
	}

	s.phase = PhaseQuiz
	s.question = 0
	s.selected = -1
	return nil
}

// Answer selects option i of the current question.
func (s *Session) Answer(i int) (AnswerOutcome, error) {
	if s.phase != PhaseQuiz {
		return AnswerOutcome{}, ErrWrongPhase
	}
	if s.locked {
		return AnswerOutcome{}, ErrInputLocked
	}

	q := s.quiz[s.question]
	if i < 0 || i >= len(q.Options) {
		return AnswerOutcome{}, fmt.Errorf("%w: %d", ErrInvalidChoice, i)
	}

	s.locked = true
	s.selected = i
	correct := i == q.CorrectAnswer
	if correct {
		s.quizScore += PointsPerCorrect
	}

	return AnswerOutcome{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Generation:    s.generation,
	}, nil
}

// NextQuestion moves past an answered question. It reports true when the
// quiz is over and the session entered the results phase.
func (s *Session) NextQuestion() (bool, error) {
	if s.phase != PhaseQuiz {
		return false, ErrWrongPhase
	}
	if !s.locked {
		return false, ErrNothingPending
	}

	s.locked = false
	s.selected = -1
	if s.question < len(s.quiz)-1 {
		s.question++
		return false, nil
	}

	s.phase = PhaseResults
	return true, nil
}

// Result grades the session once it reached the results phase.
func (s *Session) Result() (Result, error) {
	if s.phase != PhaseResults {
		return Result{}, ErrWrongPhase
	}
	return ComputeResult(s.storyScore, s.quizScore), nil
}
