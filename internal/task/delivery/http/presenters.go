package http

import "calendar-agent/internal/task"

const statusCreated = "created"

// --- Request DTOs ---

type addTaskReq struct {
	Summary     string `json:"summary"     binding:"required,notblank"`
	Day         string `json:"day"         binding:"required"`
	StartTime   string `json:"start_time"  binding:"required"`
	EndTime     string `json:"end_time"    binding:"required"`
	Description string `json:"description"`
}

func (r addTaskReq) toInput() task.AddTaskInput {
	return task.AddTaskInput{
		Summary:     r.Summary,
		Day:         r.Day,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type addTaskResp struct {
	Status  string `json:"status"`
	EventID string `json:"eventId"`
}

func (h *handler) newAddTaskResp(out task.AddTaskOutput) addTaskResp {
	return addTaskResp{
		Status:  statusCreated,
		EventID: out.EventID,
	}
}
