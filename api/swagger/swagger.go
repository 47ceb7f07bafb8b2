package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "MyClassProgress API",
        "description": "Students, teachers, tasks and grades of a class progress tracker",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Auth"
        },
        {
            "name": "Students"
        },
        {
            "name": "Teachers"
        },
        {
            "name": "Tasks"
        },
        {
            "name": "Grades"
        },
        {
            "name": "Classes"
        },
        {
            "name": "Settings"
        },
        {
            "name": "Data",
            "description": "Backup, restore and reset"
        },
        {
            "name": "Ops"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Readiness check of the storage backend",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Backend unavailable"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": [
                    "Ops"
                ],
                "summary": "Request and persistence counters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/MetricsSnapshot"
                        }
                    }
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Log in as a student or teacher",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Inactive account",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "End the current session",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": [
                    "Auth"
                ],
                "summary": "Current session account",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Not logged in",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/students": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "List active students",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "kelas",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Filter by class"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Students"
                ],
                "summary": "Register a student",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/NewStudent"
                        }
                    }
                ]
            }
        },
        "/api/v1/students/{id}": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Get student detail",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Students"
                ],
                "summary": "Patch a student",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StudentPatch"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Students"
                ],
                "summary": "Deactivate a student",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/v1/students/{id}/tasks": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Task rows of a student",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ]
            }
        },
        "/api/v1/students/{id}/grades": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Grades of a student",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ]
            }
        },
        "/api/v1/students/{id}/statistics": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Progress statistics of a student",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ]
            }
        },
        "/api/v1/students/{id}/dashboard": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "Student landing view",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Student ID"
                    }
                ]
            }
        },
        "/api/v1/teachers": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "List active teachers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Register a teacher",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/NewTeacher"
                        }
                    }
                ]
            }
        },
        "/api/v1/teachers/{id}": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Get teacher detail",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Patch a teacher",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TeacherPatch"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Deactivate a teacher",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/v1/teachers/{id}/tasks": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Task rows created by a teacher",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    }
                ]
            }
        },
        "/api/v1/teachers/{id}/grades": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Grades recorded by a teacher",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    }
                ]
            }
        },
        "/api/v1/teachers/{id}/dashboard": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Teacher landing view",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    }
                ]
            }
        },
        "/api/v1/teachers/{id}/report": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Grade summary of a teacher",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Teacher ID"
                    }
                ]
            }
        },
        "/api/v1/tasks": {
            "get": {
                "tags": [
                    "Tasks"
                ],
                "summary": "List task rows",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "siswaId",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Student ID"
                    },
                    {
                        "name": "guruId",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Teacher ID"
                    },
                    {
                        "name": "kelas",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Class"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "belum or selesai"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Give a task to one student",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/NewTask"
                        }
                    }
                ]
            }
        },
        "/api/v1/tasks/assign": {
            "post": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Give a task to every active student of a class",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ClassAssignment"
                        }
                    }
                ]
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Get a task row",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Task ID"
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Patch a task row",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Task ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TaskPatch"
                        }
                    }
                ]
            }
        },
        "/api/v1/grades": {
            "get": {
                "tags": [
                    "Grades"
                ],
                "summary": "List grades",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "siswaId",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Student ID"
                    },
                    {
                        "name": "guruId",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Teacher ID"
                    },
                    {
                        "name": "tugasId",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "Task ID"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Grades"
                ],
                "summary": "Record a grade; a second grade for the same student and task overwrites the first",
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "200": {
                        "description": "Overwritten",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GradeInput"
                        }
                    }
                ]
            }
        },
        "/api/v1/grades/lookup": {
            "get": {
                "tags": [
                    "Grades"
                ],
                "summary": "Grade of one student for one task",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "siswaId",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "description": "Student ID"
                    },
                    {
                        "name": "tugasId",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "description": "Task ID"
                    }
                ]
            }
        },
        "/api/v1/grades/{id}": {
            "patch": {
                "tags": [
                    "Grades"
                ],
                "summary": "Patch a grade",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Grade ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GradePatch"
                        }
                    }
                ]
            }
        },
        "/api/v1/classes": {
            "get": {
                "tags": [
                    "Classes"
                ],
                "summary": "Classes with active students",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/classes/{class}/students": {
            "get": {
                "tags": [
                    "Classes"
                ],
                "summary": "Active students of a class",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "class",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Class label, e.g. 12 IPA 1"
                    }
                ]
            }
        },
        "/api/v1/classes/{class}/tasks": {
            "get": {
                "tags": [
                    "Classes"
                ],
                "summary": "Task rows of the class's current students",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "class",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Class label, e.g. 12 IPA 1"
                    }
                ]
            }
        },
        "/api/v1/classes/{class}/statistics": {
            "get": {
                "tags": [
                    "Classes"
                ],
                "summary": "Grade statistics of a class",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "class",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Class label, e.g. 12 IPA 1"
                    }
                ]
            }
        },
        "/api/v1/classes/{class}/ranking": {
            "get": {
                "tags": [
                    "Classes"
                ],
                "summary": "Class members ordered by average grade",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "class",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Class label, e.g. 12 IPA 1"
                    }
                ]
            }
        },
        "/api/v1/classes/{class}/report": {
            "get": {
                "tags": [
                    "Classes"
                ],
                "summary": "Download the class ranking report",
                "produces": [
                    "text/csv",
                    "application/pdf",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "name": "class",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Class label, e.g. 12 IPA 1"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "csv (default), pdf or xlsx"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/v1/settings": {
            "get": {
                "tags": [
                    "Settings"
                ],
                "summary": "School settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "Settings"
                ],
                "summary": "Patch school settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SettingsPatch"
                        }
                    }
                ]
            }
        },
        "/api/v1/data/export": {
            "get": {
                "tags": [
                    "Data"
                ],
                "summary": "Download a full backup",
                "responses": {
                    "200": {
                        "description": "Backup file",
                        "schema": {
                            "$ref": "#/definitions/Snapshot"
                        }
                    }
                }
            }
        },
        "/api/v1/data/import": {
            "post": {
                "tags": [
                    "Data"
                ],
                "summary": "Restore a backup; absent collections are left untouched",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/Snapshot"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/v1/data/reset": {
            "post": {
                "tags": [
                    "Data"
                ],
                "summary": "Start a reset to the demo data set",
                "responses": {
                    "202": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/data/reset/confirm": {
            "post": {
                "tags": [
                    "Data"
                ],
                "summary": "Wipe all data back to the demo data set",
                "parameters": [
                    {
                        "name": "X-Reset-Token",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/ResetConfirmRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "412": {
                        "description": "Invalid or expired token",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/data/save": {
            "post": {
                "tags": [
                    "Data"
                ],
                "summary": "Retry writing every key to the backend",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "507": {
                        "description": "Backend full",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "siswa",
                        "guru"
                    ]
                }
            }
        },
        "NewStudent": {
            "type": "object",
            "properties": {
                "nama": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "kelas": {
                    "type": "string"
                },
                "telepon": {
                    "type": "string"
                },
                "tanggalLahir": {
                    "type": "string"
                },
                "alamat": {
                    "type": "string"
                }
            }
        },
        "StudentPatch": {
            "type": "object",
            "properties": {
                "nama": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "kelas": {
                    "type": "string"
                },
                "telepon": {
                    "type": "string"
                },
                "tanggalLahir": {
                    "type": "string"
                },
                "alamat": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "NewTeacher": {
            "type": "object",
            "properties": {
                "nama": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "mataPelajaran": {
                    "type": "string"
                },
                "telepon": {
                    "type": "string"
                },
                "classes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "TeacherPatch": {
            "type": "object",
            "properties": {
                "nama": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "mataPelajaran": {
                    "type": "string"
                },
                "telepon": {
                    "type": "string"
                },
                "classes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "NewTask": {
            "type": "object",
            "properties": {
                "judul": {
                    "type": "string"
                },
                "deskripsi": {
                    "type": "string"
                },
                "mataPelajaran": {
                    "type": "string"
                },
                "guruId": {
                    "type": "string"
                },
                "tanggalDiberikan": {
                    "type": "string"
                },
                "tenggatWaktu": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "siswaId": {
                    "type": "string"
                },
                "kelas": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                },
                "attachments": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "ClassAssignment": {
            "type": "object",
            "properties": {
                "judul": {
                    "type": "string"
                },
                "deskripsi": {
                    "type": "string"
                },
                "mataPelajaran": {
                    "type": "string"
                },
                "guruId": {
                    "type": "string"
                },
                "tanggalDiberikan": {
                    "type": "string"
                },
                "tenggatWaktu": {
                    "type": "string"
                },
                "kelas": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                }
            }
        },
        "TaskPatch": {
            "type": "object",
            "properties": {
                "judul": {
                    "type": "string"
                },
                "deskripsi": {
                    "type": "string"
                },
                "mataPelajaran": {
                    "type": "string"
                },
                "tenggatWaktu": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "kelas": {
                    "type": "string"
                },
                "priority": {
                    "type": "string"
                },
                "attachments": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "GradeInput": {
            "type": "object",
            "properties": {
                "siswaId": {
                    "type": "string"
                },
                "tugasId": {
                    "type": "string"
                },
                "mataPelajaran": {
                    "type": "string"
                },
                "nilai": {
                    "type": "number"
                },
                "tanggal": {
                    "type": "string"
                },
                "catatan": {
                    "type": "string"
                },
                "guruId": {
                    "type": "string"
                },
                "semester": {
                    "type": "integer"
                },
                "academicYear": {
                    "type": "string"
                }
            }
        },
        "GradePatch": {
            "type": "object",
            "properties": {
                "mataPelajaran": {
                    "type": "string"
                },
                "nilai": {
                    "type": "number"
                },
                "tanggal": {
                    "type": "string"
                },
                "catatan": {
                    "type": "string"
                },
                "guruId": {
                    "type": "string"
                },
                "semester": {
                    "type": "integer"
                },
                "academicYear": {
                    "type": "string"
                }
            }
        },
        "SettingsPatch": {
            "type": "object",
            "properties": {
                "academicYear": {
                    "type": "string"
                },
                "semester": {
                    "type": "integer"
                },
                "schoolName": {
                    "type": "string"
                },
                "schoolAddress": {
                    "type": "string"
                },
                "schoolPhone": {
                    "type": "string"
                }
            }
        },
        "ResetConfirmRequest": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                }
            }
        },
        "Snapshot": {
            "type": "object",
            "properties": {
                "students": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "teachers": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "tasks": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "grades": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "settings": {
                    "type": "object"
                },
                "exportDate": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "MetricsSnapshot": {
            "type": "object",
            "properties": {
                "requests": {
                    "type": "integer"
                },
                "avgRequestMs": {
                    "type": "number"
                },
                "persists": {
                    "type": "integer"
                },
                "persistFailures": {
                    "type": "integer"
                },
                "avgPersistMs": {
                    "type": "number"
                },
                "reseeds": {
                    "type": "integer"
                },
                "lastPersistFailed": {
                    "type": "boolean"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
