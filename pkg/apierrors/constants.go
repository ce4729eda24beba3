package apierrors

const (
	MsgMissingUserID      = "missingUserID"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailRestoreTask    = "failRestoreTask"
	MsgFailPurgeTask      = "failPurgeTask"

	MsgSelfDependency       = "selfDependency"
	MsgCircularDependency   = "circularDependency"
	MsgDuplicateDependency  = "duplicateDependency"
	MsgDependencyNotFound   = "dependencyNotFound"
	MsgFailListDependencies = "failListDependencies"
	MsgFailCreateDependency = "failCreateDependency"
	MsgFailDeleteDependency = "failDeleteDependency"
	MsgFailDependencyStatus = "failDependencyStatus"
)
