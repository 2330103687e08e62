/*
Package ports defines the driven ports (interfaces) for Graft tooling.

These interfaces decouple plan-driven commands from external implementations,
allowing the same tooling to read composition plans from the filesystem
(Loam), from memory, or from any other backend.

# Key Interfaces

  - PlanLoader: Responsible for loading plan documents.
  - Watchable: Optional change notification for hot-reload workflows.
*/
package ports
