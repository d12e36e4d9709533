package roadmap

import (
	"fmt"
	"math/rand"
)

// MotivationalMessage picks one of a fixed pool of congratulatory templates
// interpolating the user's goal, the task title, and the completed count.
func MotivationalMessage(goal, taskTitle string, completedTasks int) string {
	messages := []string{
		fmt.Sprintf("🚀 Great job! You're %d steps closer to '%s'. Every expert was once a beginner!", completedTasks, goal),
		fmt.Sprintf("💪 You're building something amazing! The '%s' task is a crucial building block for '%s'.", taskTitle, goal),
		fmt.Sprintf("🌟 Remember why you started: '%s'. Today's task brings you closer to that dream!", goal),
		fmt.Sprintf("🔥 Consistency beats perfection! You've completed %d tasks already. Keep the momentum going!", completedTasks),
		"💡 Every practice, every concept learned, every task completed is an investment in your future self!",
		fmt.Sprintf("🎯 Focus on progress, not perfection. '%s' might seem small, but it's a vital step toward '%s'.", taskTitle, goal),
		fmt.Sprintf("⭐ You're not just learning — you're building a new future. '%s' is within reach!", goal),
		fmt.Sprintf("🚗 You don't need to see the whole road — just the next turn. Today's task: '%s'.", taskTitle),
	}
	return messages[rand.Intn(len(messages))]
}
